package profile

import (
	"errors"
	"reflect"
	"sync"

	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// DamageRequest GET /api/dunam 요청 파라미터
type DamageRequest struct {
	Server      string `query:"server" validate:"required"`
	CharacterID string `query:"characterId" validate:"required"`
}

// GearRequest GET /api/dfgear, GET /api/taecho 요청 파라미터
type GearRequest struct {
	Server        string `query:"server" validate:"required"`
	CharacterID   string `query:"characterId" validate:"required"`
	CharacterName string `query:"characterName" validate:"required"`
}

// AdventureRequest GET /api/adventure-stat 요청 파라미터
type AdventureRequest struct {
	AdvName string `query:"advName" validate:"required"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator 초기화된 validator 인스턴스를 반환합니다. 에러의 필드 이름은 query 태그 값을 사용합니다.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("query"); name != "" {
				return name
			}
			return fld.Name
		})
	})

	return validate
}

// bindRequest 쿼리 파라미터를 req에 바인딩하고 필수 값을 검증합니다.
//
// 형식은 검사하지 않으며 값의 존재 여부만 확인합니다. 실패하면 400 에러를 반환합니다.
func bindRequest(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return httputil.NewBadRequestError(constants.ErrMsgMissingParams).WithInternal(err)
	}

	if err := getValidator().Struct(req); err != nil {
		fields := applog.Fields{
			"path":      c.Request().URL.Path,
			"remote_ip": c.RealIP(),
		}

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fe.Field())
			}
			fields["missing"] = missing
		}

		applog.WithComponentAndFields(constants.ComponentHandler, fields).Debug(constants.LogMsgMissingParams)

		return httputil.NewBadRequestError(constants.ErrMsgMissingParams).WithInternal(err)
	}

	return nil
}

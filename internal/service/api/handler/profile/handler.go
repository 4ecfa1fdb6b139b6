// Package profile 캐릭터/모험단 프로필 조회 엔드포인트 핸들러를 제공합니다.
package profile

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/darkkaiser/dnf-profile-server/internal/service/api/constants"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api/httputil"
	profilemodel "github.com/darkkaiser/dnf-profile-server/internal/service/api/model/profile"
	"github.com/darkkaiser/dnf-profile-server/internal/service/notification"
	profilesvc "github.com/darkkaiser/dnf-profile-server/internal/service/profile"
	"github.com/darkkaiser/dnf-profile-server/internal/service/profile/extract"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// ProfileService 프로필 조회 작업을 정의합니다. *profilesvc.Service가 구현합니다.
type ProfileService interface {
	Damage(ctx context.Context, q profilesvc.DamageQuery) (*profilesvc.DamageResult, error)
	Gear(ctx context.Context, q profilesvc.GearQuery) (profilesvc.GearSnapshot, error)
	TaechoItems(ctx context.Context, q profilesvc.GearQuery) ([]extract.ItemEntry, error)
	AdventureStat(ctx context.Context, advName string) ([]byte, error)
	TaechoChannelImage(ctx context.Context) ([]byte, error)
}

// Handler 프로필 조회 엔드포인트 핸들러
type Handler struct {
	service ProfileService

	notificationSender notification.Sender
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(service ProfileService, notificationSender notification.Sender) *Handler {
	if service == nil {
		panic(constants.PanicMsgProfileServiceRequired)
	}
	if notificationSender == nil {
		panic(constants.PanicMsgNotificationSenderRequired)
	}

	return &Handler{
		service: service,

		notificationSender: notificationSender,
	}
}

// DamageHandler godoc
// @Summary 총 딜량/버프력 조회
// @Description 던담 캐릭터 페이지에서 총 딜량 또는 버프력을 추출합니다.
// @Description 딜러는 총 딜량을, 버퍼는 버프력을 반환하며 isBuff로 구분합니다.
// @Tags Profile
// @Produce json
// @Param server query string true "서버 ID" example(cain)
// @Param characterId query string true "캐릭터 ID"
// @Success 200 {object} profile.DamageResponse "조회 성공"
// @Failure 200 {object} response.ErrorResponse "조회된 데이터 없음 (No data found)"
// @Failure 400 {object} response.ErrorResponse "필수 파라미터 누락 (Missing params)"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Failure 500 {object} response.ErrorResponse "내부 오류 (Internal error)"
// @Router /api/dunam [get]
func (h *Handler) DamageHandler(c echo.Context) error {
	var req DamageRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	result, err := h.service.Damage(c.Request().Context(), profilesvc.DamageQuery{
		Server:      req.Server,
		CharacterID: req.CharacterID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, profilemodel.DamageResponse{
		Success:  true,
		IsBuff:   result.IsBuff,
		Raw:      result.Raw,
		Number:   result.Number,
		Readable: result.Readable,
	})
}

// GearHandler godoc
// @Summary 장비 현황 조회
// @Description dfgear 캐릭터 페이지에서 명성, 랭킹, 등급별 장비 수, 갱신 시각을 추출합니다.
// @Description 찾지 못한 항목은 null로 반환하며, 모든 항목을 찾지 못하면 No data found를 반환합니다.
// @Tags Profile
// @Produce json
// @Param server query string true "서버 ID" example(cain)
// @Param characterId query string true "캐릭터 ID"
// @Param characterName query string true "캐릭터 이름"
// @Success 200 {object} profile.GearResponse "조회 성공"
// @Failure 200 {object} response.ErrorResponse "조회된 데이터 없음 (No data found)"
// @Failure 400 {object} response.ErrorResponse "필수 파라미터 누락 (Missing params)"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Failure 500 {object} response.ErrorResponse "내부 오류 (Internal error)"
// @Router /api/dfgear [get]
func (h *Handler) GearHandler(c echo.Context) error {
	var req GearRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	snapshot, err := h.service.Gear(c.Request().Context(), req.query())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, profilemodel.GearResponse{
		Success:    true,
		Fame:       snapshot["fame"],
		KirinRank:  snapshot["kirinRank"],
		ObtainRank: snapshot["obtainRank"],
		Ancient:    snapshot["ancient"],
		Epic:       snapshot["epic"],
		Legendary:  snapshot["legendary"],
		Abyss:      snapshot["abyss"],
		PotEpic:    snapshot["potEpic"],
		PotLegend:  snapshot["potLegend"],
		Updated:    snapshot["updated"],
	})
}

// TaechoHandler godoc
// @Summary 태초 장비 획득 목록 조회
// @Description dfgear 캐릭터 페이지에서 태초 장비 획득 목록(이미지, 이름, 획득일)을 추출합니다.
// @Description 항목 중 하나라도 비어있는 행은 제외됩니다.
// @Tags Profile
// @Produce json
// @Param server query string true "서버 ID" example(cain)
// @Param characterId query string true "캐릭터 ID"
// @Param characterName query string true "캐릭터 이름"
// @Success 200 {object} profile.TaechoResponse "조회 성공"
// @Failure 200 {object} response.ErrorResponse "조회된 데이터 없음 (No data found)"
// @Failure 400 {object} response.ErrorResponse "필수 파라미터 누락 (Missing params)"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Failure 500 {object} response.ErrorResponse "내부 오류 (Internal error)"
// @Router /api/taecho [get]
func (h *Handler) TaechoHandler(c echo.Context) error {
	var req GearRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	entries, err := h.service.TaechoItems(c.Request().Context(), req.query())
	if err != nil {
		return h.handleError(c, err)
	}

	items := make([]profilemodel.TaechoItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, profilemodel.TaechoItem{Img: e.Img, Name: e.Name, Date: e.Date})
	}

	return c.JSON(http.StatusOK, profilemodel.TaechoResponse{
		Success: true,
		Items:   items,
	})
}

// AdventureStatHandler godoc
// @Summary 모험단 스탯 캡처
// @Description 던담 모험단 페이지의 스탯 영역을 PNG 이미지로 캡처합니다.
// @Tags Profile
// @Produce png
// @Produce json
// @Param advName query string true "모험단 이름"
// @Success 200 {file} binary "PNG 이미지"
// @Failure 400 {object} response.ErrorResponse "필수 파라미터 누락 (Missing params)"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Failure 500 {object} response.ErrorResponse "내부 오류 (Internal error)"
// @Router /api/adventure-stat [get]
func (h *Handler) AdventureStatHandler(c echo.Context) error {
	var req AdventureRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	png, err := h.service.AdventureStat(c.Request().Context(), req.AdvName)
	if err != nil {
		return h.handleError(c, err)
	}

	return httputil.PNG(c, png)
}

// TaechoChannelImageHandler godoc
// @Summary 태초 채널 현황 캡처
// @Description dfgear 태초 채널 페이지의 현황 영역을 PNG 이미지로 캡처합니다.
// @Tags Profile
// @Produce png
// @Produce json
// @Success 200 {file} binary "PNG 이미지"
// @Failure 429 {object} response.ErrorResponse "요청 속도 제한 초과"
// @Failure 500 {object} response.ErrorResponse "내부 오류 (Internal error)"
// @Router /api/taecho-channel-image [get]
func (h *Handler) TaechoChannelImageHandler(c echo.Context) error {
	png, err := h.service.TaechoChannelImage(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return httputil.PNG(c, png)
}

// handleError 서비스 에러를 응답으로 변환합니다.
//
//   - ErrNoData: 200 {success:false, message:"No data found"}
//   - 그 외: 500 {success:false, message:"Internal error"}, 운영자 알림 발송
//
// 클라이언트가 연결을 끊어 요청이 취소된 경우에는 알림을 보내지 않습니다.
func (h *Handler) handleError(c echo.Context, err error) error {
	fields := applog.Fields{
		"path":       c.Request().URL.Path,
		"remote_ip":  c.RealIP(),
		"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if errors.Is(err, profilesvc.ErrNoData) {
		applog.WithComponentAndFields(constants.ComponentHandler, fields).Info(constants.LogMsgProfileNoData)
		return httputil.NoData(c)
	}

	if errors.Is(c.Request().Context().Err(), context.Canceled) {
		fields["error"] = err
		applog.WithComponentAndFields(constants.ComponentHandler, fields).Warn(constants.LogMsgRequestCancel)
	} else {
		h.notificationSender.NotifyDefaultWithError(fmt.Sprintf("%s\n\n경로: %s\n오류: %s", constants.LogMsgProfileFailed, c.Request().URL.Path, err))
	}

	return httputil.NewInternalServerError(constants.ErrMsgInternal).WithInternal(err)
}

func (r GearRequest) query() profilesvc.GearQuery {
	return profilesvc.GearQuery{
		Server:        r.Server,
		CharacterID:   r.CharacterID,
		CharacterName: r.CharacterName,
	}
}

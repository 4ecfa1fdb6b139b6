// Package profile 캐릭터 정보 페이지를 브라우저로 열어 필요한 값을 추출하거나 영역을 캡처합니다.
//
// 모든 작업은 다음 순서를 따르며 요청 사이에 상태를 공유하지 않습니다.
//
//	URL 생성 -> 브라우저 획득 -> 페이지 이동 -> 준비 대기 -> 추출/캡처 -> 가공 -> 브라우저 해제
package profile

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/dnf-profile-server/internal/config"
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	"github.com/darkkaiser/dnf-profile-server/internal/service/browser"
	"github.com/darkkaiser/dnf-profile-server/internal/service/profile/extract"
	"github.com/darkkaiser/dnf-profile-server/internal/service/profile/numfmt"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/iancoleman/strcase"
)

const component = "profile.service"

// ErrNoData 페이지는 정상적으로 열렸으나 추출할 값이 하나도 없을 때 반환되는 에러입니다.
var ErrNoData = apperrors.New(apperrors.NotFound, "조회된 데이터가 없습니다")

// DamageQuery 딜량/버프력 조회 조건입니다.
type DamageQuery struct {
	Server      string
	CharacterID string
}

// GearQuery 장비 현황 및 태초 목록 조회 조건입니다.
type GearQuery struct {
	Server        string
	CharacterID   string
	CharacterName string
}

// DamageResult 딜량 또는 버프력 조회 결과입니다.
type DamageResult struct {
	IsBuff   bool
	Raw      string
	Number   *uint64
	Readable *string
}

// GearSnapshot lowerCamelCase 필드 이름을 키로 하는 장비 현황입니다. 값이 없는 필드는 nil입니다.
type GearSnapshot map[string]*string

// Service 프로필 조회 작업을 수행합니다.
type Service struct {
	browserConfig config.BrowserConfig
	sites         config.SitesConfig

	launcher browser.Launcher

	damageSpec extract.FieldSpec
	gearSpecs  map[string]extract.FieldSpec
	taechoSpec extract.ListSpec
}

// NewService 설정과 Launcher로 Service를 생성합니다.
func NewService(appConfig *config.AppConfig, launcher browser.Launcher) *Service {
	if appConfig == nil {
		panic("AppConfig는 필수입니다")
	}
	if launcher == nil {
		panic("browser.Launcher는 필수입니다")
	}

	sites := appConfig.Sites

	gearSpecs := make(map[string]extract.FieldSpec, len(sites.DFGear.Fields))
	for key, candidates := range sites.DFGear.Fields {
		gearSpecs[key] = toFieldSpec(candidates)
	}

	taecho := sites.DFGear.Taecho

	return &Service{
		browserConfig: appConfig.Browser,
		sites:         sites,

		launcher: launcher,

		damageSpec: toFieldSpec(sites.Dundam.Damage),
		gearSpecs:  gearSpecs,
		taechoSpec: extract.ListSpec{
			Container: taecho.Container,
			Image:     taecho.Image,
			ImageAttr: taecho.ImageAttr,
			Name:      taecho.Name,
			Date:      taecho.Date,
			DateAttr:  taecho.DateAttr,
		},
	}
}

// Damage 캐릭터의 총 딜량 또는 버프력을 조회합니다.
func (s *Service) Damage(ctx context.Context, q DamageQuery) (*DamageResult, error) {
	site := s.sites.Dundam
	target := buildURL(site.BaseURL, param{"server", q.Server}, param{"key", q.CharacterID})

	var field extract.Field
	err := s.withPage(ctx, target, site.ReadySelector, func(doc *goquery.Document) {
		field = extract.Resolve(doc.Selection, s.damageSpec)
	})
	if err != nil {
		return nil, err
	}
	if !field.Found {
		return nil, ErrNoData
	}

	r := numfmt.Normalize(field.Value)

	return &DamageResult{
		IsBuff:   field.Kind == config.KindBuffScore,
		Raw:      r.Raw,
		Number:   r.Number,
		Readable: r.Readable,
	}, nil
}

// Gear 캐릭터의 장비 현황을 조회합니다. 설정된 필드가 모두 비어있으면 ErrNoData를 반환합니다.
func (s *Service) Gear(ctx context.Context, q GearQuery) (GearSnapshot, error) {
	site := s.sites.DFGear

	var fields map[string]extract.Field
	err := s.withPage(ctx, gearURL(site.BaseURL, q), site.ReadySelector, func(doc *goquery.Document) {
		fields = extract.ResolveAll(doc.Selection, s.gearSpecs)
	})
	if err != nil {
		return nil, err
	}

	snapshot := make(GearSnapshot, len(config.GearFieldKeys))
	found := false
	for _, key := range config.GearFieldKeys {
		name := strcase.ToLowerCamel(key)
		if f, ok := fields[key]; ok && f.Found {
			v := f.Value
			snapshot[name] = &v
			found = true
			continue
		}
		snapshot[name] = nil
	}
	if !found {
		return nil, ErrNoData
	}

	return snapshot, nil
}

// TaechoItems 캐릭터의 태초 장비 획득 목록을 조회합니다.
func (s *Service) TaechoItems(ctx context.Context, q GearQuery) ([]extract.ItemEntry, error) {
	site := s.sites.DFGear

	var items []extract.ItemEntry
	err := s.withPage(ctx, gearURL(site.BaseURL, q), site.ReadySelector, func(doc *goquery.Document) {
		items = extract.ResolveList(doc.Selection, s.taechoSpec)
	})
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoData
	}

	return items, nil
}

// AdventureStat 모험단 스탯 영역을 PNG로 캡처합니다.
func (s *Service) AdventureStat(ctx context.Context, advName string) ([]byte, error) {
	site := s.sites.Adventure
	return s.capture(ctx, buildURL(site.URL, param{site.QueryParam, advName}), site)
}

// TaechoChannelImage 태초 채널 현황 영역을 PNG로 캡처합니다.
func (s *Service) TaechoChannelImage(ctx context.Context) ([]byte, error) {
	site := s.sites.TaechoChannel
	return s.capture(ctx, site.URL, site)
}

func (s *Service) capture(ctx context.Context, target string, site config.CaptureSiteConfig) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.browserConfig.RequestTimeout)
	defer cancel()

	var png []byte
	err := browser.With(ctx, s.launcher, func(sess browser.Session) error {
		if err := s.open(ctx, sess, target, site.ReadySelector); err != nil {
			return err
		}

		b, err := sess.Screenshot(ctx, site.CaptureSelector)
		if err != nil {
			return err
		}
		png = b
		return nil
	})
	if err != nil {
		if errors.Is(err, browser.ErrElementNotFound) {
			return nil, ErrNoData
		}
		return nil, err
	}
	if len(png) == 0 {
		return nil, ErrNoData
	}

	return png, nil
}

// withPage 요청 제한 시간 안에서 페이지를 열고 DOM 스냅샷을 fn에 전달합니다.
func (s *Service) withPage(ctx context.Context, target, readySelector string, fn func(doc *goquery.Document)) error {
	ctx, cancel := context.WithTimeout(ctx, s.browserConfig.RequestTimeout)
	defer cancel()

	return browser.With(ctx, s.launcher, func(sess browser.Session) error {
		if err := s.open(ctx, sess, target, readySelector); err != nil {
			return err
		}

		doc, err := sess.Snapshot(ctx)
		if err != nil {
			return err
		}

		fn(doc)
		return nil
	})
}

func (s *Service) open(ctx context.Context, sess browser.Session, target, readySelector string) error {
	applog.WithComponentAndFields(component, applog.Fields{
		"url":            target,
		"ready_selector": readySelector,
	}).Debug("페이지 조회 시작")

	if err := sess.Navigate(ctx, target); err != nil {
		return err
	}
	return sess.WaitReady(ctx, readySelector)
}

func toFieldSpec(candidates []config.SelectorCandidate) extract.FieldSpec {
	spec := make(extract.FieldSpec, 0, len(candidates))
	for _, c := range candidates {
		spec = append(spec, extract.Candidate{Selector: c.Selector, Kind: c.Kind, Label: c.Label})
	}
	return spec
}

type param struct {
	key   string
	value string
}

func gearURL(base string, q GearQuery) string {
	return buildURL(base, param{"sId", q.Server}, param{"cName", q.CharacterName}, param{"cId", q.CharacterID})
}

// buildURL 파라미터 순서를 유지한 채 쿼리 문자열을 붙입니다. url.Values.Encode는 키를 정렬하므로 사용하지 않습니다.
func buildURL(base string, params ...param) string {
	var sb strings.Builder
	sb.WriteString(base)
	for i, p := range params {
		if i == 0 {
			sb.WriteByte('?')
		} else {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p.key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p.value))
	}
	return sb.String()
}

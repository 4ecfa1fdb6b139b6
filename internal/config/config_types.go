package config

import (
	"fmt"
	"slices"
	"sort"
	"time"

	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	"github.com/go-playground/validator/v10"
)

// 딜량 후보 셀렉터가 가리키는 값의 종류입니다.
const (
	KindTotalDamage = "total_damage"
	KindBuffScore   = "buff_score"
)

// GearFieldKeys 장비 스냅샷에서 지원하는 필드 키 목록입니다. 응답에서는 lowerCamelCase로 변환됩니다.
var GearFieldKeys = []string{
	"fame",
	"kirin_rank",
	"obtain_rank",
	"ancient",
	"epic",
	"legendary",
	"abyss",
	"pot_epic",
	"pot_legend",
	"updated",
}

// AppConfig 애플리케이션의 모든 설정을 포함하는 최상위 구조체
type AppConfig struct {
	Debug       bool              `json:"debug"`
	Browser     BrowserConfig     `json:"browser"`
	Sites       SitesConfig       `json:"sites"`
	API         APIConfig         `json:"api"`
	Notifier    NotifierConfig    `json:"notifier"`
	HealthProbe HealthProbeConfig `json:"health_probe"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Browser, "브라우저(browser)"); err != nil {
		return err
	}
	if err := c.Browser.validate(); err != nil {
		return err
	}

	if err := c.Sites.validate(v); err != nil {
		return err
	}

	if err := c.API.validate(v); err != nil {
		return err
	}

	if err := c.Notifier.validate(v); err != nil {
		return err
	}

	if c.HealthProbe.Enabled {
		if err := checkStruct(v, c.HealthProbe, "브라우저 상태 점검(health_probe)"); err != nil {
			return err
		}
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	warnings := c.API.VerifyRecommendations()
	warnings = append(warnings, c.Browser.VerifyRecommendations()...)
	return warnings
}

// BrowserConfig 요청마다 실행하는 헤드리스 브라우저의 실행 옵션과 단계별 제한 시간을 정의합니다.
type BrowserConfig struct {
	Headless          bool          `json:"headless"`
	NoSandbox         bool          `json:"no_sandbox"`
	DisableGPU        bool          `json:"disable_gpu"`
	ExecPath          string        `json:"exec_path"`
	UserAgent         string        `json:"user_agent"`
	WindowWidth       int           `json:"window_width" validate:"min=320,max=7680"`
	WindowHeight      int           `json:"window_height" validate:"min=240,max=4320"`
	NavigationTimeout time.Duration `json:"navigation_timeout" validate:"gt=0"`
	ReadyTimeout      time.Duration `json:"ready_timeout" validate:"gt=0"`
	RequestTimeout    time.Duration `json:"request_timeout" validate:"gt=0"`
}

func (c *BrowserConfig) validate() error {
	if c.RequestTimeout < c.NavigationTimeout {
		return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 제한 시간(request_timeout: %s)은 페이지 이동 제한 시간(navigation_timeout: %s)보다 짧을 수 없습니다", c.RequestTimeout, c.NavigationTimeout))
	}
	return nil
}

func (c *BrowserConfig) VerifyRecommendations() []string {
	var warnings []string

	if !c.Headless {
		warnings = append(warnings, "브라우저가 헤드리스 모드가 아닌 상태로 실행되도록 설정되었습니다(browser.headless: false). 서버 환경에서는 디스플레이가 없어 실행에 실패할 수 있습니다")
	}

	return warnings
}

// SelectorCandidate 하나의 필드를 추출하기 위해 순서대로 시도하는 CSS 셀렉터 후보입니다.
//
// Kind는 어떤 후보가 일치했는지를 응답에 전달하기 위한 태그이며, Label이 설정되면
// 추출한 텍스트 앞의 라벨(예: "기린 랭킹 :")을 제거합니다.
type SelectorCandidate struct {
	Selector string `json:"selector" validate:"required"`
	Kind     string `json:"kind"`
	Label    string `json:"label"`
}

// SitesConfig 스크래핑 대상 사이트별 URL과 셀렉터 테이블입니다.
type SitesConfig struct {
	Dundam        DundamConfig      `json:"dundam"`
	DFGear        DFGearConfig      `json:"dfgear"`
	Adventure     CaptureSiteConfig `json:"adventure"`
	TaechoChannel CaptureSiteConfig `json:"taecho_channel"`
}

func (c *SitesConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c.Dundam, "던담(sites.dundam)"); err != nil {
		return err
	}
	if err := c.Dundam.validate(); err != nil {
		return err
	}

	if err := checkStruct(v, c.DFGear, "장비 조회(sites.dfgear)"); err != nil {
		return err
	}
	if err := c.DFGear.validate(); err != nil {
		return err
	}

	if err := checkStruct(v, c.Adventure, "모험단 스탯(sites.adventure)"); err != nil {
		return err
	}
	if c.Adventure.QueryParam == "" {
		return apperrors.New(apperrors.InvalidInput, "모험단 스탯(sites.adventure)의 모험단명 쿼리 파라미터(query_param)는 필수입니다")
	}

	return checkStruct(v, c.TaechoChannel, "태초 채널(sites.taecho_channel)")
}

// DundamConfig 캐릭터 딜량/버프력 조회 페이지 설정입니다.
type DundamConfig struct {
	BaseURL       string              `json:"base_url" validate:"required,site_url"`
	ReadySelector string              `json:"ready_selector" validate:"required"`
	Damage        []SelectorCandidate `json:"damage" validate:"min=1,dive"`
}

func (c *DundamConfig) validate() error {
	for i, candidate := range c.Damage {
		if candidate.Kind != KindTotalDamage && candidate.Kind != KindBuffScore {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("던담(sites.dundam) damage[%d]의 kind는 '%s' 또는 '%s'이어야 합니다: '%s'", i, KindTotalDamage, KindBuffScore, candidate.Kind))
		}
	}
	return nil
}

// DFGearConfig 장비 현황 및 태초 획득 목록 페이지 설정입니다.
type DFGearConfig struct {
	BaseURL       string                         `json:"base_url" validate:"required,site_url"`
	ReadySelector string                         `json:"ready_selector" validate:"required"`
	Fields        map[string][]SelectorCandidate `json:"fields" validate:"min=1,dive,min=1,dive"`
	Taecho        ListConfig                     `json:"taecho"`
}

func (c *DFGearConfig) validate() error {
	keys := make([]string, 0, len(c.Fields))
	for key := range c.Fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !slices.Contains(GearFieldKeys, key) {
			return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("장비 조회(sites.dfgear)에 지원하지 않는 필드가 정의되었습니다: '%s'", key))
		}
	}

	return nil
}

// ListConfig 목록형 추출 규칙입니다. Container에 일치하는 각 노드에서 하위 셀렉터로 항목을 추출합니다.
type ListConfig struct {
	Container string `json:"container" validate:"required"`
	Image     string `json:"image" validate:"required"`
	ImageAttr string `json:"image_attr" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Date      string `json:"date" validate:"required"`
	DateAttr  string `json:"date_attr" validate:"required"`
}

// CaptureSiteConfig 특정 영역을 PNG 이미지로 캡처하는 페이지 설정입니다.
// CaptureSelector가 비어있으면 페이지 전체를 캡처합니다.
type CaptureSiteConfig struct {
	URL             string `json:"url" validate:"required,site_url"`
	QueryParam      string `json:"query_param"`
	ReadySelector   string `json:"ready_selector" validate:"required"`
	CaptureSelector string `json:"capture_selector"`
}

// APIConfig 외부에 노출되는 HTTP API 서버 설정입니다.
type APIConfig struct {
	ListenPort  int        `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool       `json:"tls_server"`
	TLSCertFile string     `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string     `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	CORS        CORSConfig `json:"cors"`
}

func (c *APIConfig) validate(v *validator.Validate) error {
	if err := c.CORS.validate(); err != nil {
		return err
	}

	return checkStruct(v, c, "API 서버(api)")
}

func (c *APIConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

// validate 태그만으로 표현하기 어려운 규칙을 검사합니다. 개별 Origin 형식은 cors_origin 태그로 검증합니다.
func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
	}

	return nil
}

// NotifierConfig 예상하지 못한 오류를 운영자에게 알리는 채널 설정입니다.
type NotifierConfig struct {
	Telegram TelegramConfig `json:"telegram"`
}

func (c *NotifierConfig) validate(v *validator.Validate) error {
	if !c.Telegram.Enabled {
		return nil
	}
	return checkStruct(v, c.Telegram, "텔레그램 알림(notifier.telegram)")
}

// TelegramConfig 텔레그램 봇 토큰 및 채팅 ID 정보를 담는 설정 구조체
type TelegramConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required"`
}

// HealthProbeConfig 브라우저 실행 가능 여부를 주기적으로 점검하는 스케줄 설정입니다.
type HealthProbeConfig struct {
	Enabled  bool   `json:"enabled"`
	TimeSpec string `json:"time_spec" validate:"required,cron_spec"`
}

package config

import "time"

// 브라우저 기본값
const (
	DefaultNavigationTimeout = 30 * time.Second
	DefaultReadyTimeout      = 15 * time.Second
	DefaultRequestTimeout    = 60 * time.Second
	DefaultListenPort        = 3000
)

const (
	dundamDamagePath = "#content-container > div.new-cinfo > div.c-aba-stat > div > div.abas-bottom > div.abbot-alldeal > div > div"
)

// newDefaultConfig 설정 파일과 환경 변수가 덮어쓰기 전의 기본 설정을 생성합니다.
//
// 던담 셀렉터는 현재 운영 중인 페이지 구조를 기준으로 하며, 나머지 사이트는
// 설정 파일에서 실제 값으로 교체하는 것을 전제로 합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		Browser: BrowserConfig{
			Headless:          true,
			NoSandbox:         true,
			DisableGPU:        true,
			WindowWidth:       1920,
			WindowHeight:      1080,
			NavigationTimeout: DefaultNavigationTimeout,
			ReadyTimeout:      DefaultReadyTimeout,
			RequestTimeout:    DefaultRequestTimeout,
		},
		Sites: SitesConfig{
			Dundam: DundamConfig{
				BaseURL:       "https://dundam.xyz/character",
				ReadySelector: "#content-container",
				Damage: []SelectorCandidate{
					{Selector: dundamDamagePath + " > div:nth-child(8) > div > div", Kind: KindTotalDamage},
					{Selector: dundamDamagePath + " > div > div > div", Kind: KindBuffScore},
				},
			},
			DFGear: DFGearConfig{
				BaseURL:       "https://dfgear.xyz/character",
				ReadySelector: "#character-info",
				Fields: map[string][]SelectorCandidate{
					"fame":        {{Selector: ".char-fame .value", Kind: "fame"}},
					"kirin_rank":  {{Selector: ".char-rank .kirin", Kind: "kirin_rank", Label: "기린 랭킹 :"}},
					"obtain_rank": {{Selector: ".char-rank .obtain", Kind: "obtain_rank", Label: "획득 랭킹 :"}},
					"ancient":     {{Selector: ".gear-count .ancient", Kind: "ancient"}},
					"epic":        {{Selector: ".gear-count .epic", Kind: "epic"}},
					"legendary":   {{Selector: ".gear-count .legendary", Kind: "legendary"}},
					"abyss":       {{Selector: ".gear-count .abyss", Kind: "abyss"}},
					"pot_epic":    {{Selector: ".pot-count .epic", Kind: "pot_epic"}},
					"pot_legend":  {{Selector: ".pot-count .legendary", Kind: "pot_legend"}},
					"updated":     {{Selector: ".char-updated", Kind: "updated", Label: "갱신 :"}},
				},
				Taecho: ListConfig{
					Container: ".taecho-list > li",
					Image:     "img",
					ImageAttr: "src",
					Name:      ".item-name",
					Date:      ".item-date",
					DateAttr:  "data-date",
				},
			},
			Adventure: CaptureSiteConfig{
				URL:             "https://dundam.xyz/adventure",
				QueryParam:      "advName",
				ReadySelector:   "#content-container",
				CaptureSelector: "#content-container .adv-stat",
			},
			TaechoChannel: CaptureSiteConfig{
				URL:             "https://dfgear.xyz/taecho/channel",
				ReadySelector:   "#channel-board",
				CaptureSelector: "#channel-board",
			},
		},
		API: APIConfig{
			ListenPort: DefaultListenPort,
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
		},
		HealthProbe: HealthProbeConfig{
			Enabled:  false,
			TimeSpec: "0 */10 * * * *",
		},
	}
}

package browser

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	cdpbrowser "github.com/chromedp/cdproto/browser"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"github.com/darkkaiser/dnf-profile-server/internal/config"
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
)

// screenshotQuality 100이면 PNG로 캡처됩니다.
const screenshotQuality = 100

// chromeLauncher chromedp로 로컬 Chrome 프로세스를 실행하는 Launcher 구현체입니다.
type chromeLauncher struct {
	cfg  config.BrowserConfig
	opts []chromedp.ExecAllocatorOption
}

// NewLauncher 브라우저 설정으로 Launcher를 생성합니다.
func NewLauncher(cfg config.BrowserConfig) Launcher {
	return &chromeLauncher{
		cfg:  cfg,
		opts: allocatorOptions(cfg),
	}
}

func allocatorOptions(cfg config.BrowserConfig) []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("no-sandbox", cfg.NoSandbox),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(cfg.WindowWidth, cfg.WindowHeight),
	)
	if cfg.DisableGPU {
		opts = append(opts, chromedp.DisableGPU)
	}
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}
	return opts
}

func (l *chromeLauncher) Acquire(ctx context.Context) (Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, l.opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx, chromedp.WithErrorf(func(format string, args ...any) {
		applog.WithComponent(component).Debugf(format, args...)
	}))

	// 첫 Run 호출 시 브라우저가 실행되므로, 실행 실패를 획득 단계에서 바로 확인합니다.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, wrapStepError(err, apperrors.System, "브라우저를 실행할 수 없습니다")
	}

	return &chromeSession{
		cfg:         l.cfg,
		ctx:         browserCtx,
		cancel:      browserCancel,
		allocCancel: allocCancel,
	}, nil
}

type chromeSession struct {
	cfg config.BrowserConfig

	ctx         context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc

	closeOnce sync.Once
	closeErr  error
}

// run 브라우저 컨텍스트에서 액션을 실행합니다. timeout과 호출자 ctx 중 먼저 끝나는 쪽에서 중단됩니다.
func (s *chromeSession) run(ctx context.Context, timeout time.Duration, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	if err := chromedp.Run(runCtx, actions...); err != nil {
		// 호출자 ctx의 만료는 runCtx에서 Canceled로 보이므로 원래 원인으로 되돌립니다.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%w: %w", ctxErr, err)
		}
		return err
	}
	return nil
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	applog.WithComponentAndFields(component, applog.Fields{
		"url": url,
	}).Debug("페이지 이동 시작")

	if err := s.run(ctx, s.cfg.NavigationTimeout, chromedp.Navigate(url)); err != nil {
		return wrapStepError(err, apperrors.ExecutionFailed, fmt.Sprintf("페이지 이동에 실패하였습니다: '%s'", url))
	}
	return nil
}

func (s *chromeSession) WaitReady(ctx context.Context, selector string) error {
	if err := s.run(ctx, s.cfg.ReadyTimeout, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		return newPageNotReadyError(selector, err)
	}
	return nil
}

func (s *chromeSession) Snapshot(ctx context.Context) (*goquery.Document, error) {
	var html string
	if err := s.run(ctx, s.cfg.ReadyTimeout, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, wrapStepError(err, apperrors.ExecutionFailed, "페이지 HTML을 가져오는데 실패하였습니다")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ParsingFailed, "페이지 HTML 파싱에 실패하였습니다")
	}
	return doc, nil
}

func (s *chromeSession) Screenshot(ctx context.Context, selector string) ([]byte, error) {
	var buf []byte

	if selector == "" {
		if err := s.run(ctx, s.cfg.ReadyTimeout, chromedp.FullScreenshot(&buf, screenshotQuality)); err != nil {
			return nil, wrapStepError(err, apperrors.ExecutionFailed, "페이지 전체 캡처에 실패하였습니다")
		}
		return buf, nil
	}

	// 대기 없이 현재 DOM에서 요소 존재 여부만 확인합니다.
	var nodes []*cdp.Node
	if err := s.run(ctx, s.cfg.ReadyTimeout, chromedp.Nodes(selector, &nodes, chromedp.ByQuery, chromedp.AtLeast(0))); err != nil {
		return nil, wrapStepError(err, apperrors.ExecutionFailed, fmt.Sprintf("캡처 대상 요소('%s') 조회에 실패하였습니다", selector))
	}
	if len(nodes) == 0 {
		return nil, newElementNotFoundError(selector)
	}

	if err := s.run(ctx, s.cfg.ReadyTimeout, chromedp.Screenshot(selector, &buf, chromedp.ByQuery)); err != nil {
		return nil, wrapStepError(err, apperrors.ExecutionFailed, fmt.Sprintf("요소('%s') 캡처에 실패하였습니다", selector))
	}
	return buf, nil
}

func (s *chromeSession) Version(ctx context.Context) (string, error) {
	var product string
	err := s.run(ctx, s.cfg.ReadyTimeout, chromedp.ActionFunc(func(ctx context.Context) error {
		_, p, _, _, _, err := cdpbrowser.GetVersion().Do(ctx)
		product = p
		return err
	}))
	if err != nil {
		return "", wrapStepError(err, apperrors.ExecutionFailed, "브라우저 버전 조회에 실패하였습니다")
	}
	return product, nil
}

// Close 브라우저를 정상 종료한 뒤 할당자 컨텍스트를 정리합니다.
func (s *chromeSession) Close() error {
	s.closeOnce.Do(func() {
		// 요청 제한 시간 초과 등으로 이미 취소된 경우 종료 에러는 의미가 없습니다.
		alreadyDone := s.ctx.Err() != nil
		if err := chromedp.Cancel(s.ctx); err != nil && !alreadyDone && !errors.Is(err, context.Canceled) {
			s.closeErr = apperrors.Wrap(err, apperrors.System, "브라우저 종료에 실패하였습니다")
		}
		s.cancel()
		s.allocCancel()
	})
	return s.closeErr
}

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	"github.com/darkkaiser/dnf-profile-server/internal/pkg/version"
	"github.com/darkkaiser/dnf-profile-server/internal/service"
	"github.com/darkkaiser/dnf-profile-server/internal/service/api"
	"github.com/darkkaiser/dnf-profile-server/internal/service/browser"
	"github.com/darkkaiser/dnf-profile-server/internal/service/notification"
	"github.com/darkkaiser/dnf-profile-server/internal/service/probe"
	"github.com/darkkaiser/dnf-profile-server/internal/service/profile"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
)

// @title DNF Profile Server API
// @version 1.0.0
// @description 던전앤파이터 캐릭터 정보 사이트(던담, dfgear)를 헤드리스 브라우저로 조회하여
// @description 딜량, 장비 현황, 태초 획득 목록, 모험단/채널 캡처 이미지를 제공하는 REST API입니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT

// @BasePath /

const banner = `
  ____   _   _  _____     ____                __  _  _
 |  _ \ | \ | ||  ___|   |  _ \  _ __  ___   / _|(_)| |  ___
 | | | ||  \| || |_      | |_) || '__|/ _ \ | |_ | || | / _ \
 | |_| || |\  ||  _|     |  __/ | |  | (_) ||  _|| || ||  __/
 |____/ |_| \_||_|       |_|    |_|   \___/ |_|  |_||_| \___|
                                                       %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	configFile := config.DefaultFilename
	if len(os.Args) > 1 {
		configFile = os.Args[1]
	}

	appConfig, err := config.LoadWithFile(configFile)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	logOpts := applog.NewProductionOptions(config.AppName)
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentOptions(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}

	os.Exit(run(appConfig, appLogCloser))
}

// run 서비스를 구성하고 종료 신호를 받을 때까지 실행합니다. 프로세스 종료 코드를 반환합니다.
func run(appConfig *config.AppConfig, appLogCloser io.Closer) int {
	defer appLogCloser.Close()

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 서비스를 생성한다.
	launcher := browser.NewLauncher(appConfig.Browser)

	notificationService := notification.NewService(appConfig)
	profileService := profile.NewService(appConfig, launcher)
	probeService := probe.NewService(appConfig, launcher, notificationService)
	apiService := api.NewService(appConfig, profileService, notificationService, probeService, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serviceStopWG := &sync.WaitGroup{}

	// 알림 서비스를 가장 먼저 시작하여 다른 서비스의 시작 실패도 알릴 수 있도록 한다.
	services := []service.Service{notificationService, probeService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패로 프로그램을 종료합니다")

			cancel()
			serviceStopWG.Wait()

			return 1
		}
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(termC)

	applog.WithComponent("main").Info("서버 가동 완료")

	sig := <-termC

	applog.WithComponentAndFields("main", applog.Fields{
		"signal": sig.String(),
	}).Info("종료 신호를 수신하였습니다")

	cancel()
	serviceStopWG.Wait()

	applog.WithComponent("main").Info("서버가 정상적으로 종료되었습니다")

	return 0
}

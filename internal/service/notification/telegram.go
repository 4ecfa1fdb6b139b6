package notification

import (
	"html"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/darkkaiser/dnf-profile-server/internal/config"
	apperrors "github.com/darkkaiser/dnf-profile-server/internal/pkg/errors"
	"github.com/darkkaiser/dnf-profile-server/internal/pkg/mark"
	applog "github.com/darkkaiser/dnf-profile-server/pkg/log"
	"github.com/darkkaiser/dnf-profile-server/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// messageMaxLength 텔레그램 Bot API가 허용하는 단일 메시지의 최대 길이(바이트)입니다.
const messageMaxLength = 4096

// botClient 텔레그램 봇 API 중 알림 발송에 필요한 메서드만 정의한 인터페이스입니다.
type botClient interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// botFactory 봇 토큰으로 botClient를 생성하는 함수 타입입니다.
type botFactory func(botToken string, debug bool) (botClient, error)

// newTelegramBot 텔레그램 봇 API 클라이언트를 생성합니다.
//
// 생성 시점에 getMe API를 호출하여 토큰의 유효성을 확인합니다.
func newTelegramBot(botToken string, debug bool) (botClient, error) {
	applog.WithComponentAndFields(component, applog.Fields{
		"bot_token": strutil.Mask(botToken),
	}).Debug("텔레그램 봇 클라이언트 초기화")

	// http.DefaultClient는 타임아웃이 없으므로 명시적으로 지정합니다.
	client := &http.Client{
		Timeout: httpClientTimeout,
	}

	botAPI, err := tgbotapi.NewBotAPIWithClient(botToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}
	botAPI.Debug = debug

	return botAPI, nil
}

// buildMessage 알림 메시지에 애플리케이션 제목과 오류 표시를 붙여 HTML 형식으로 만듭니다.
func buildMessage(message string, errorOccurred bool) string {
	var sb strings.Builder

	sb.WriteString("<b>【 ")
	sb.WriteString(config.AppName)
	sb.WriteString(" 】</b>")
	if errorOccurred {
		sb.WriteString(mark.Alert.WithSpace())
	}
	sb.WriteString("\n\n")
	sb.WriteString(html.EscapeString(message))

	return sb.String()
}

// splitMessage 메시지를 limit 바이트 이하의 조각으로 나눕니다.
//
// 가능한 한 줄 단위로 나누며, 한 줄이 limit을 넘는 경우에만 UTF-8 문자 경계에서 강제로 자릅니다.
func splitMessage(message string, limit int) []string {
	if len(message) <= limit {
		return []string{message}
	}

	var chunks []string
	var sb strings.Builder

	flush := func() {
		if sb.Len() > 0 {
			chunks = append(chunks, sb.String())
			sb.Reset()
		}
	}

	for line := range strings.SplitSeq(message, "\n") {
		needed := len(line)
		if sb.Len() > 0 {
			needed++
		}

		if sb.Len()+needed > limit {
			flush()

			for len(line) > limit {
				cut := limit
				for cut > 0 && !utf8.RuneStart(line[cut]) {
					cut--
				}
				chunks = append(chunks, line[:cut])
				line = line[cut:]
			}
		}

		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	flush()

	return chunks
}

// Package extract DOM 스냅샷에서 순서가 정해진 셀렉터 후보 테이블을 평가하여 필드 값을 추출합니다.
//
// 대상 사이트의 마크업은 캐릭터 유형이나 사이트 개편에 따라 달라지므로, 하나의 필드를
// 여러 후보 셀렉터로 정의하고 가장 먼저 비어있지 않은 텍스트를 돌려주는 후보를 채택합니다.
// 어떤 후보도 일치하지 않는 것은 오류가 아니라 정상적인 "값 없음" 결과입니다.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/darkkaiser/dnf-profile-server/pkg/strutil"
	"golang.org/x/text/unicode/norm"
)

// Candidate 하나의 필드를 찾기 위한 셀렉터 후보입니다.
type Candidate struct {
	Selector string
	Kind     string
	Label    string
}

// FieldSpec 우선순위 순서로 나열된 후보 목록입니다.
type FieldSpec []Candidate

// Field 추출 결과입니다. Found가 false이면 Value와 Kind는 의미가 없습니다.
type Field struct {
	Value string
	Kind  string
	Found bool
}

// Resolve 후보를 순서대로 평가하여 처음으로 비어있지 않은 텍스트를 가진 노드의 값을 반환합니다.
//
// 후보마다 셀렉터에 일치하는 첫 번째 노드만 확인합니다. 첫 노드의 텍스트가 공백뿐이면
// 뒤에 일치하는 노드에 텍스트가 있더라도 그 후보는 실패로 보고 다음 후보로 넘어갑니다.
func Resolve(root *goquery.Selection, spec FieldSpec) Field {
	for _, c := range spec {
		if c.Selector == "" {
			continue
		}

		text := cleanText(root.Find(c.Selector).First().Text())
		if text == "" {
			continue
		}

		return Field{
			Value: StripLabel(text, c.Label),
			Kind:  c.Kind,
			Found: true,
		}
	}

	return Field{}
}

// ResolveAll 여러 필드를 한 번에 추출합니다. 결과 맵에는 요청한 모든 필드 이름이 포함됩니다.
func ResolveAll(root *goquery.Selection, specs map[string]FieldSpec) map[string]Field {
	fields := make(map[string]Field, len(specs))
	for name, spec := range specs {
		fields[name] = Resolve(root, spec)
	}
	return fields
}

// StripLabel 텍스트가 label로 시작하면 그 부분을 제거하고 남은 값을 반환합니다.
// label이 비어있거나 일치하지 않으면 텍스트를 그대로 반환합니다.
//
//	StripLabel("기린 랭킹 : 12", "기린 랭킹 :") // "12"
func StripLabel(text, label string) string {
	label = cleanText(label)
	if label == "" {
		return text
	}

	rest, ok := strings.CutPrefix(text, label)
	if !ok {
		return text
	}

	return strings.TrimSpace(rest)
}

// cleanText 유니코드 NFC 정규화 후 공백을 정리합니다.
func cleanText(s string) string {
	return strutil.NormalizeSpaces(norm.NFC.String(s))
}

package extract

import (
	"github.com/PuerkitoBio/goquery"
)

// ListSpec 목록형 추출 규칙입니다.
//
// Container에 일치하는 각 노드 안에서 Image 노드의 ImageAttr 속성, Name 노드의 텍스트,
// Date 노드의 DateAttr 속성(없으면 title 속성)을 읽습니다.
type ListSpec struct {
	Container string
	Image     string
	ImageAttr string
	Name      string
	Date      string
	DateAttr  string
}

// ItemEntry 목록의 한 항목입니다.
type ItemEntry struct {
	Img  string `json:"img"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// ResolveList 컨테이너에 일치하는 모든 노드에서 항목을 추출합니다.
// 하위 필드 중 하나라도 비어있는 항목은 결과에서 제외됩니다.
func ResolveList(root *goquery.Selection, spec ListSpec) []ItemEntry {
	items := make([]ItemEntry, 0)

	root.Find(spec.Container).Each(func(_ int, s *goquery.Selection) {
		entry := ItemEntry{
			Img:  attr(s.Find(spec.Image).First(), spec.ImageAttr),
			Name: cleanText(s.Find(spec.Name).First().Text()),
			Date: dateOf(s.Find(spec.Date).First(), spec.DateAttr),
		}

		if entry.Img == "" || entry.Name == "" || entry.Date == "" {
			return
		}
		items = append(items, entry)
	})

	return items
}

func dateOf(s *goquery.Selection, dateAttr string) string {
	if v := attr(s, dateAttr); v != "" {
		return v
	}
	return attr(s, "title")
}

func attr(s *goquery.Selection, name string) string {
	if s.Length() == 0 || name == "" {
		return ""
	}
	v, _ := s.Attr(name)
	return cleanText(v)
}

package profile

// DamageResponse 딜량/버프력 조회 응답
type DamageResponse struct {
	Success bool `json:"success" example:"true"`
	// 버프력이면 true, 총 딜량이면 false
	IsBuff bool `json:"isBuff" example:"false"`
	// 페이지에 표시된 원문
	Raw string `json:"raw" example:"1,234,567,890"`
	// 숫자만 추출한 값 (추출 불가 시 null)
	Number *uint64 `json:"number" example:"1234567890"`
	// 억/만 단위로 읽기 쉽게 변환한 값 (추출 불가 시 null)
	Readable *string `json:"readable" example:"12억3456만"`
}

// GearResponse 장비 현황 조회 응답. 값을 찾지 못한 필드는 null입니다.
type GearResponse struct {
	Success    bool    `json:"success" example:"true"`
	Fame       *string `json:"fame" example:"52,310"`
	KirinRank  *string `json:"kirinRank" example:"1,024위"`
	ObtainRank *string `json:"obtainRank" example:"512위"`
	Ancient    *string `json:"ancient" example:"3"`
	Epic       *string `json:"epic" example:"120"`
	Legendary  *string `json:"legendary" example:"40"`
	Abyss      *string `json:"abyss" example:"2"`
	PotEpic    *string `json:"potEpic" example:"5"`
	PotLegend  *string `json:"potLegend" example:"1"`
	Updated    *string `json:"updated" example:"2025-12-01 14:00"`
}

// TaechoItem 태초 장비 획득 항목
type TaechoItem struct {
	Img  string `json:"img" example:"https://img.example.com/item.png"`
	Name string `json:"name" example:"태초의 검"`
	Date string `json:"date" example:"2025-12-01"`
}

// TaechoResponse 태초 장비 획득 목록 응답
type TaechoResponse struct {
	Success bool         `json:"success" example:"true"`
	Items   []TaechoItem `json:"items"`
}

package model

// SurveyAnswer サーベイの1問への回答。選択肢はいずれかの旅行スタイルに対応する
type SurveyAnswer struct {
	QuestionID string      `json:"question_id"`
	Style      TravelStyle `json:"style" binding:"required"`
	Weight     int         `json:"weight"` // 0以下は1として扱う
}

// SurveyRequest サーベイ回答の送信
type SurveyRequest struct {
	Answers []SurveyAnswer `json:"answers" binding:"required,min=1"`
}

// SurveyResult サーベイの集計結果
type SurveyResult struct {
	TravelStyle TravelStyle         `json:"travel_style"`
	StyleName   string              `json:"style_name"`
	Scores      map[TravelStyle]int `json:"scores"`
	Categories  []Category          `json:"categories"`
}

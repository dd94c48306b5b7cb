package model

import "strings"

// Category スポットのカテゴリ（固定語彙）
type Category string

// CategoryConstants はアプリケーションで使用するカテゴリの定数
const (
	CategoryCafe       Category = "cafe"
	CategoryRestaurant Category = "restaurant"
	CategoryAttraction Category = "attraction"
	CategoryMuseum     Category = "museum"
	CategoryPark       Category = "park"
	CategoryShopping   Category = "shopping"
	CategoryLodging    Category = "lodging"
	CategoryActivity   Category = "activity"
)

// TravelStyle サーベイから導かれる旅行スタイル
type TravelStyle string

// TravelStyleConstants はアプリケーションで使用する旅行スタイルの定数
const (
	TravelStyleHealing     TravelStyle = "healing"
	TravelStyleSightseeing TravelStyle = "sightseeing"
	TravelStyleActivity    TravelStyle = "activity"
)

// CategoryNameMap はカテゴリIDから韓国語表示名へのマッピング
var CategoryNameMap = map[Category]string{
	CategoryCafe:       "카페",
	CategoryRestaurant: "맛집",
	CategoryAttraction: "관광지",
	CategoryMuseum:     "박물관",
	CategoryPark:       "공원",
	CategoryShopping:   "쇼핑",
	CategoryLodging:    "숙소",
	CategoryActivity:   "액티비티",
}

// TravelStyleNameMap は旅行スタイルIDから韓国語表示名へのマッピング
var TravelStyleNameMap = map[TravelStyle]string{
	TravelStyleHealing:     "힐링",
	TravelStyleSightseeing: "관광",
	TravelStyleActivity:    "액티비티",
}

// GetCategoryKoreanName はカテゴリIDから韓国語名を取得する
func GetCategoryKoreanName(category Category) string {
	if name, ok := CategoryNameMap[category]; ok {
		return name
	}
	return string(category) // デフォルトはそのまま返す
}

// GetTravelStyleKoreanName は旅行スタイルIDから韓国語名を取得する
func GetTravelStyleKoreanName(style TravelStyle) string {
	if name, ok := TravelStyleNameMap[style]; ok {
		return name
	}
	return string(style)
}

// ParseTravelStyle はIDまたは韓国語名から旅行スタイルを解決する
func ParseTravelStyle(value string) (TravelStyle, error) {
	v := strings.TrimSpace(value)
	for style, name := range TravelStyleNameMap {
		if strings.EqualFold(v, string(style)) || v == name {
			return style, nil
		}
	}
	return "", ErrUnknownTravelStyle
}

// GetAllTravelStyles は全旅行スタイルの一覧を取得する（サーベイの同点判定の優先順）
func GetAllTravelStyles() []TravelStyle {
	return []TravelStyle{
		TravelStyleHealing,
		TravelStyleSightseeing,
		TravelStyleActivity,
	}
}

// GetAllCategories は全カテゴリの一覧を取得する
func GetAllCategories() []Category {
	return []Category{
		CategoryCafe,
		CategoryRestaurant,
		CategoryAttraction,
		CategoryMuseum,
		CategoryPark,
		CategoryShopping,
		CategoryLodging,
		CategoryActivity,
	}
}

// CandidateSetSize は候補セットのスポット数
const CandidateSetSize = 4

// SeoulCityHall 位置が解決できない場合の既定座標
var SeoulCityHall = LatLng{Lat: 37.5665, Lng: 126.9780}

// KnownDestinations はジオコーディング不可時に使用する主要旅行先の座標
var KnownDestinations = map[string]LatLng{
	"서울": {Lat: 37.5665, Lng: 126.9780},
	"부산": {Lat: 35.1796, Lng: 129.0756},
	"제주": {Lat: 33.4996, Lng: 126.5312},
	"강릉": {Lat: 37.7519, Lng: 128.8761},
	"경주": {Lat: 35.8562, Lng: 129.2247},
	"전주": {Lat: 35.8242, Lng: 127.1480},
	"여수": {Lat: 34.7604, Lng: 127.6622},
	"인천": {Lat: 37.4563, Lng: 126.7052},
	"대구": {Lat: 35.8714, Lng: 128.6014},
	"광주": {Lat: 35.1595, Lng: 126.8526},
	"대전": {Lat: 36.3504, Lng: 127.3845},
	"속초": {Lat: 38.2070, Lng: 128.5918},
}

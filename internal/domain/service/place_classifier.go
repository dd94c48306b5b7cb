package service

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"
)

// indoorKeywords は屋内と判定するキーワード
var indoorKeywords = []string{
	// 展示・文化施設
	"박물관", "미술관", "갤러리", "전시관", "기념관", "아쿠아리움", "수족관",
	"museum", "gallery", "aquarium",
	// 公演・映画
	"극장", "공연장", "영화관", "시네마", "theater", "theatre", "cinema",
	// 商業施設
	"쇼핑몰", "백화점", "아울렛", "면세점", "mall", "department store", "outlet",
	// スパ・サウナ・宿泊
	"스파", "사우나", "찜질방", "숙소", "호텔", "spa", "sauna", "hotel",
	// 飲食
	"카페", "커피", "레스토랑", "식당", "맛집", "cafe", "café", "coffee", "restaurant",
	// 建物
	"빌딩", "타워", "센터", "홀", "building", "tower", "hall",
}

// outdoorKeywords は屋外と判定するキーワード
var outdoorKeywords = []string{
	// 自然
	"공원", "해변", "해수욕장", "등산", "산책로", "둘레길", "오름", "폭포", "계곡", "섬",
	"park", "beach", "mountain", "hiking", "trail", "waterfall", "valley", "island",
	// 動植物
	"동물원", "식물원", "수목원", "zoo", "botanical", "garden",
	// 水辺・森
	"호수", "강변", "한강", "바다", "숲", "lake", "river", "sea", "forest",
	// 展望・街
	"전망대", "광장", "거리", "다리", "대교", "observatory", "plaza", "square", "street", "bridge",
	// 史跡
	"궁", "고궁", "사찰", "한옥마을", "민속촌", "palace", "temple", "folk village",
	// テーマパーク
	"테마파크", "놀이공원", "theme park",
}

// PlaceClassifier はスポット名と住所のキーワードから屋内・屋外を判定する
// 外部呼び出しを行わない固定のキーワード照合
type PlaceClassifier struct {
	indoorMatcher  a.AhoCorasick
	outdoorMatcher a.AhoCorasick
}

// NewPlaceClassifier は新しいPlaceClassifierインスタンスを作成する
func NewPlaceClassifier() *PlaceClassifier {
	return &PlaceClassifier{
		indoorMatcher:  buildMatcher(indoorKeywords),
		outdoorMatcher: buildMatcher(outdoorKeywords),
	}
}

func buildMatcher(keywords []string) a.AhoCorasick {
	builder := a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            a.LeftMostLongestMatch,
		DFA:                  true,
	})
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}
	return builder.Build(lowered)
}

// Classify は屋内なら true を返す
// 屋内キーワードのみ一致した場合だけ屋内。両方一致・どちらも一致しない場合は屋外
func (c *PlaceClassifier) Classify(name, address string) bool {
	text := strings.ToLower(name + " " + address)

	hasIndoor := c.indoorMatcher.Iter(text).Next() != nil
	hasOutdoor := c.outdoorMatcher.Iter(text).Next() != nil

	return hasIndoor && !hasOutdoor
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceClassifier_Classify(t *testing.T) {
	c := NewPlaceClassifier()

	cases := []struct {
		name    string
		place   string
		address string
		indoor  bool
	}{
		{"屋内キーワードのみは屋内", "국립중앙박물관", "서울 용산구 서빙고로 137", true},
		{"屋外キーワードのみは屋外", "한라산 둘레길", "제주특별자치도 제주시", false},
		{"両方含む場合は屋外", "박물관 공원", "서울", false},
		{"どちらも含まない場合は屋外", "성산일출봉", "제주특별자치도 서귀포시", false},
		{"英語は大文字小文字を区別しない", "Blue Bottle COFFEE", "Seoul", true},
		{"住所のキーワードも判定に使う", "스타벅스", "서울 중구 한강대로 405", false},
		{"カフェは屋内", "제주 카페 추천", "제주", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.indoor, c.Classify(tc.place, tc.address))
		})
	}

	t.Run("同じ入力には常に同じ結果を返す", func(t *testing.T) {
		for _, tc := range cases {
			first := c.Classify(tc.place, tc.address)
			for i := 0; i < 5; i++ {
				assert.Equal(t, first, c.Classify(tc.place, tc.address))
			}
		}
	})
}

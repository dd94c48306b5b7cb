package helper

import (
	"Tripcast-App/internal/domain/model"
	"math"
	"sort"
)

// earthRadiusMeters は直線距離の推定に使用する地球半径 (m)
const earthRadiusMeters = 6371000.0

// walkingMetersPerMinute は推定区間の所要時間に使う平均徒歩速度 (m/分)
const walkingMetersPerMinute = 50.0

// EstimateDistance は2地点間の大円距離をHaversine式で計算する (m)
func EstimateDistance(p1, p2 model.LatLng) float64 {
	lat1 := p1.Lat * math.Pi / 180
	lng1 := p1.Lng * math.Pi / 180
	lat2 := p2.Lat * math.Pi / 180
	lng2 := p2.Lng * math.Pi / 180
	dLat := lat2 - lat1
	dLng := lng2 - lng1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusMeters * c
}

// EstimateDistancePlace は2つのPlace間の距離を計算する (m)
func EstimateDistancePlace(p1, p2 *model.Place) float64 {
	return EstimateDistance(p1.ToLatLng(), p2.ToLatLng())
}

// EstimateWalkingDurationSeconds は推定距離から徒歩の所要時間を導く (秒)
func EstimateWalkingDurationSeconds(distanceMeters float64) float64 {
	return distanceMeters / walkingMetersPerMinute * 60
}

// FindByID はIDに一致するスポットのインデックスを返す。見つからない場合は -1
func FindByID(places []model.Place, id string) int {
	for i, p := range places {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// ContainsID はIDがスライスに含まれるかチェックする
func ContainsID(places []model.Place, id string) bool {
	return FindByID(places, id) >= 0
}

// ClonePlaces はスライスを複製する（元のセッション状態を変更しないため）
func ClonePlaces(places []model.Place) []model.Place {
	cloned := make([]model.Place, len(places))
	copy(cloned, places)
	return cloned
}

// SortByWeatherScore は天気スコアの高い順に並べる（同点は元の順序を維持）
func SortByWeatherScore(places []model.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].WeatherScore > places[j].WeatherScore
	})
}

// SortByRating は評価の高い順に並べる
func SortByRating(places []model.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Rating > places[j].Rating
	})
}

// SortLockedFirst は固定スポットを先頭に寄せる（固定同士・非固定同士の順序は維持）
func SortLockedFirst(places []model.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		return places[i].Locked && !places[j].Locked
	})
}

// SameIDSequence は2つのスポット列のID並びが一致するか判定する
func SameIDSequence(a, b []model.Place) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

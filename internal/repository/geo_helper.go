package repository

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"Tripcast-App/internal/domain/model"
)

// routeBoundsPadding 境界ボックスの余白（約111m）
const routeBoundsPadding = 0.001

// RouteBound はルート上の全スポットを含む境界ボックスを返す
func RouteBound(places []model.Place) (orb.Bound, bool) {
	if len(places) == 0 {
		return orb.Bound{}, false
	}

	points := make(orb.MultiPoint, 0, len(places))
	for _, p := range places {
		points = append(points, p.ToLatLng().ToPoint())
	}
	return points.Bound().Pad(routeBoundsPadding), true
}

// RouteBoundsWKT は境界ボックスをWKTのPOLYGONで返す。スポットがない場合は空文字
func RouteBoundsWKT(places []model.Place) string {
	bound, ok := RouteBound(places)
	if !ok {
		return ""
	}
	return wkt.MarshalString(bound.ToPolygon())
}

// ParseRouteBounds はWKTの境界ボックスを orb.Bound に戻す
func ParseRouteBounds(s string) (orb.Bound, error) {
	geom, err := wkt.Unmarshal(s)
	if err != nil {
		return orb.Bound{}, err
	}
	return geom.Bound(), nil
}

package helper

import "Tripcast-App/internal/domain/model"

// fallbackImages はカテゴリ別の代替画像一覧
var fallbackImages = map[model.Category][]string{
	model.CategoryCafe: {
		"https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb",
		"https://images.unsplash.com/photo-1554118811-1e0d58224f24",
		"https://images.unsplash.com/photo-1445116572660-236099ec97a0",
	},
	model.CategoryRestaurant: {
		"https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
		"https://images.unsplash.com/photo-1555396273-367ea4eb4db5",
	},
	model.CategoryAttraction: {
		"https://images.unsplash.com/photo-1538485399081-7191377e8241",
		"https://images.unsplash.com/photo-1517154421773-0529f29ea451",
	},
	model.CategoryMuseum: {
		"https://images.unsplash.com/photo-1566127444979-b3d2b654e3d7",
		"https://images.unsplash.com/photo-1554907984-15263bfd63bd",
	},
	model.CategoryPark: {
		"https://images.unsplash.com/photo-1441974231531-c6227db76b6e",
		"https://images.unsplash.com/photo-1500530855697-b586d89ba3ee",
	},
	model.CategoryShopping: {
		"https://images.unsplash.com/photo-1555529669-e69e7aa0ba9a",
	},
	model.CategoryLodging: {
		"https://images.unsplash.com/photo-1566073771259-6a8506099945",
		"https://images.unsplash.com/photo-1582719508461-905c673771fd",
	},
	model.CategoryActivity: {
		"https://images.unsplash.com/photo-1530549387789-4c1017266635",
		"https://images.unsplash.com/photo-1551632811-561732d1e306",
	},
}

// StringHash は文字コードを (acc*31 + code) で畳み込んだハッシュを返す
func StringHash(s string) uint32 {
	var acc uint32
	for _, r := range s {
		acc = acc*31 + uint32(r)
	}
	return acc
}

// FallbackImageURL はスポット名から決定的に代替画像を選ぶ
func FallbackImageURL(category model.Category, name string) string {
	images, ok := fallbackImages[category]
	if !ok || len(images) == 0 {
		images = fallbackImages[model.CategoryAttraction]
	}
	return images[StringHash(name)%uint32(len(images))]
}

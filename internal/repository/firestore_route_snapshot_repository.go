package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"Tripcast-App/internal/domain/model"
	"Tripcast-App/internal/domain/repository"
)

const routeSnapshotCollection = "routeSnapshots"

// FirestoreRouteSnapshotRepository Firestoreを使用した共有ルートリポジトリ
// expireAt フィールドにFirestoreのTTLポリシーを設定して期限切れのドキュメントを削除する
type FirestoreRouteSnapshotRepository struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreRouteSnapshotRepository 新しいFirestoreRouteSnapshotRepositoryインスタンスを作成
func NewFirestoreRouteSnapshotRepository(client *firestore.Client) repository.RouteSnapshotRepository {
	return &FirestoreRouteSnapshotRepository{client: client, now: time.Now}
}

// firestoreRouteSnapshot Firestoreに保存する形式
type firestoreRouteSnapshot struct {
	RouteJSON     string    `firestore:"routeJson"`
	PlaceIDs      []string  `firestore:"placeIds"`
	TransportMode string    `firestore:"transportMode"`
	Bounds        string    `firestore:"bounds"`
	CreatedAt     time.Time `firestore:"createdAt"`
	ExpireAt      time.Time `firestore:"expireAt"`
}

func toFirestoreRouteSnapshot(snapshot *model.RouteSnapshot) (*firestoreRouteSnapshot, error) {
	routeJSON, err := json.Marshal(snapshot.Route)
	if err != nil {
		return nil, fmt.Errorf("ルートのJSONマーシャル失敗: %w", err)
	}
	return &firestoreRouteSnapshot{
		RouteJSON:     string(routeJSON),
		PlaceIDs:      model.PlaceIDs(snapshot.Route.Places),
		TransportMode: string(snapshot.Route.TransportMode),
		Bounds:        snapshot.Bounds,
		CreatedAt:     snapshot.CreatedAt,
		ExpireAt:      snapshot.ExpireAt,
	}, nil
}

func (d *firestoreRouteSnapshot) toRouteSnapshot(id string) (*model.RouteSnapshot, error) {
	var route model.Route
	if err := json.Unmarshal([]byte(d.RouteJSON), &route); err != nil {
		return nil, fmt.Errorf("ルートのJSONアンマーシャル失敗: %w", err)
	}
	// 古いドキュメントや壊れた範囲はスポットから計算し直す
	bounds := d.Bounds
	if _, err := ParseRouteBounds(bounds); err != nil {
		bounds = RouteBoundsWKT(route.Places)
	}
	return &model.RouteSnapshot{
		ID:        id,
		Route:     &route,
		Bounds:    bounds,
		CreatedAt: d.CreatedAt,
		ExpireAt:  d.ExpireAt,
	}, nil
}

// Save は共有ルートを保存する。Bounds が空の場合はスポットから計算する
func (r *FirestoreRouteSnapshotRepository) Save(ctx context.Context, snapshot *model.RouteSnapshot) error {
	if snapshot.Route == nil {
		return fmt.Errorf("保存するルートがありません")
	}
	if snapshot.Bounds == "" {
		snapshot.Bounds = RouteBoundsWKT(snapshot.Route.Places)
	}

	data, err := toFirestoreRouteSnapshot(snapshot)
	if err != nil {
		return err
	}

	if _, err := r.client.Collection(routeSnapshotCollection).Doc(snapshot.ID).Set(ctx, data); err != nil {
		log.Printf("❌ Failed to save route snapshot %s: %v", snapshot.ID, err)
		return fmt.Errorf("共有ルートの保存に失敗しました: %w", err)
	}

	log.Printf("✅ Route snapshot saved: %s (expires at %s)", snapshot.ID, snapshot.ExpireAt.Format(time.RFC3339))
	return nil
}

// Get は共有ルートを取得する。存在しない、または期限切れの場合は model.ErrSnapshotNotFound
func (r *FirestoreRouteSnapshotRepository) Get(ctx context.Context, id string) (*model.RouteSnapshot, error) {
	doc, err := r.client.Collection(routeSnapshotCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, model.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("共有ルートの取得に失敗しました: %w", err)
	}

	var data firestoreRouteSnapshot
	if err := doc.DataTo(&data); err != nil {
		return nil, fmt.Errorf("データの変換に失敗しました: %w", err)
	}

	// TTLによる削除は即時ではないため、期限も確認する
	if !data.ExpireAt.IsZero() && r.now().After(data.ExpireAt) {
		return nil, model.ErrSnapshotNotFound
	}

	return data.toRouteSnapshot(id)
}

package maps

import (
	"context"
	"errors"
	"sync"

	"Tripcast-App/internal/domain/model"

	gmaps "googlemaps.github.io/maps"
)

// LoadState はMapProviderの状態
type LoadState string

const (
	StateUnloaded LoadState = "unloaded"
	StateLoading  LoadState = "loading"
	StateReady    LoadState = "ready"
	StateFailed   LoadState = "failed"
)

const googleProvider = "google_maps"

// MapProvider はGoogle Maps クライアントを1度だけ生成して共有する
// 同時に呼ばれた Load は1回の生成にまとめられ、失敗した場合は次の Load で再試行する
type MapProvider struct {
	mu        sync.Mutex
	state     LoadState
	client    *gmaps.Client
	err       error
	done      chan struct{}
	newClient func() (*gmaps.Client, error)
}

// NewMapProvider は新しいMapProviderを作成する。baseURL が空の場合は Google の既定URL
func NewMapProvider(apiKey, baseURL string) *MapProvider {
	return newMapProviderWithFactory(func() (*gmaps.Client, error) {
		if apiKey == "" {
			return nil, errors.New("GOOGLE_MAPS_API_KEY が設定されていません")
		}
		opts := []gmaps.ClientOption{gmaps.WithAPIKey(apiKey)}
		if baseURL != "" {
			opts = append(opts, gmaps.WithBaseURL(baseURL))
		}
		return gmaps.NewClient(opts...)
	})
}

func newMapProviderWithFactory(factory func() (*gmaps.Client, error)) *MapProvider {
	return &MapProvider{state: StateUnloaded, newClient: factory}
}

// Load はクライアントを生成し、最終的な状態を返す
// 生成中の場合は完了を待つ。ctx が先に終了した場合は StateLoading を返す
func (p *MapProvider) Load(ctx context.Context) LoadState {
	p.mu.Lock()
	switch p.state {
	case StateReady:
		p.mu.Unlock()
		return StateReady
	case StateLoading:
		done := p.done
		p.mu.Unlock()
		select {
		case <-done:
			return p.State()
		case <-ctx.Done():
			return StateLoading
		}
	}

	p.state = StateLoading
	p.done = make(chan struct{})
	done := p.done
	p.mu.Unlock()

	client, err := p.newClient()

	p.mu.Lock()
	defer p.mu.Unlock()
	if err != nil {
		p.state = StateFailed
		p.err = err
	} else {
		p.state = StateReady
		p.client = client
		p.err = nil
	}
	close(done)
	return p.state
}

// State は現在の状態を返す
func (p *MapProvider) State() LoadState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// IsReady はクライアントが使用可能かどうかを返す
func (p *MapProvider) IsReady() bool {
	return p.State() == StateReady
}

// Client は生成済みのクライアントを返す。未生成の場合は Load を行う
func (p *MapProvider) Client(ctx context.Context) (*gmaps.Client, error) {
	if p.Load(ctx) != StateReady {
		p.mu.Lock()
		err := p.err
		p.mu.Unlock()
		if err == nil {
			err = ctx.Err()
		}
		return nil, model.NewProviderError(googleProvider, model.ErrorKindNotConfigured, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.client, nil
}

package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"stillmind/backend/internal/model"
)

// ═══════════════════════════════════════════════════════════
// Mock ScheduleRepository
// ═══════════════════════════════════════════════════════════

type mockScheduleRepo struct {
	records map[string]*model.ScheduleRecord
	order   []string
	nextID  int
	failErr error
}

func newMockScheduleRepo() *mockScheduleRepo {
	return &mockScheduleRepo{records: make(map[string]*model.ScheduleRecord)}
}

func (m *mockScheduleRepo) ListByUser(_ context.Context, userID string) ([]model.ScheduleRecord, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	var result []model.ScheduleRecord
	for _, id := range m.order {
		if r, ok := m.records[id]; ok && r.Value.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockScheduleRepo) GetByID(_ context.Context, id string) (*model.ScheduleRecord, error) {
	if m.failErr != nil {
		return nil, m.failErr
	}
	if r, ok := m.records[id]; ok {
		copied := *r
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockScheduleRepo) Create(_ context.Context, record *model.ScheduleRecord) error {
	if m.failErr != nil {
		return m.failErr
	}
	if record.ID == "" {
		m.nextID++
		record.ID = fmt.Sprintf("sched-%03d", m.nextID)
	}
	copied := *record
	m.records[record.ID] = &copied
	m.order = append(m.order, record.ID)
	return nil
}

func (m *mockScheduleRepo) Replace(_ context.Context, id string, doc model.ScheduleDocument) error {
	if m.failErr != nil {
		return m.failErr
	}
	r, ok := m.records[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Value = doc
	return nil
}

func (m *mockScheduleRepo) Delete(_ context.Context, id string) error {
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.records[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

// ═══════════════════════════════════════════════════════════
// Mock UserRepository
// ═══════════════════════════════════════════════════════════

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdatePreferences(_ context.Context, id string, prefs *model.Preferences) error {
	u, ok := m.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Preferences = prefs
	return nil
}

// ═══════════════════════════════════════════════════════════
// Mock SessionRepository
// ═══════════════════════════════════════════════════════════

type mockSessionRepo struct {
	sessions map[string]*model.MeditationSession
	order    []string
	nextID   int
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*model.MeditationSession)}
}

func (m *mockSessionRepo) Create(_ context.Context, session *model.MeditationSession) error {
	if session.SessionID == "" {
		m.nextID++
		session.SessionID = fmt.Sprintf("sess-%03d", m.nextID)
	}
	copied := *session
	m.sessions[session.SessionID] = &copied
	m.order = append(m.order, session.SessionID)
	return nil
}

func (m *mockSessionRepo) GetByID(_ context.Context, id string) (*model.MeditationSession, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSessionRepo) ListByUser(_ context.Context, userID string, limit int) ([]model.MeditationSession, error) {
	var result []model.MeditationSession
	for _, id := range m.order {
		if s, ok := m.sessions[id]; ok && s.UserID == userID {
			result = append(result, *s)
		}
	}
	// newest first, as the real repository orders by completed_at DESC
	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockSessionRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.sessions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.sessions, id)
	return nil
}

// ═══════════════════════════════════════════════════════════
// Mock FavoriteRepository
// ═══════════════════════════════════════════════════════════

type mockFavoriteRepo struct {
	favorites map[string]*model.FavoriteVideo
	order     []string
	nextID    int
}

func newMockFavoriteRepo() *mockFavoriteRepo {
	return &mockFavoriteRepo{favorites: make(map[string]*model.FavoriteVideo)}
}

func (m *mockFavoriteRepo) Create(_ context.Context, fav *model.FavoriteVideo) error {
	if fav.FavoriteID == "" {
		m.nextID++
		fav.FavoriteID = fmt.Sprintf("fav-%03d", m.nextID)
	}
	copied := *fav
	m.favorites[fav.FavoriteID] = &copied
	m.order = append(m.order, fav.FavoriteID)
	return nil
}

func (m *mockFavoriteRepo) GetByUserAndVideo(_ context.Context, userID, videoID string) (*model.FavoriteVideo, error) {
	for _, f := range m.favorites {
		if f.UserID == userID && f.VideoID == videoID {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFavoriteRepo) ListByUser(_ context.Context, userID string) ([]model.FavoriteVideo, error) {
	var result []model.FavoriteVideo
	for _, id := range m.order {
		if f, ok := m.favorites[id]; ok && f.UserID == userID {
			result = append(result, *f)
		}
	}
	return result, nil
}

func (m *mockFavoriteRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.favorites[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.favorites, id)
	return nil
}

package client

import (
	"context"
	"sync"
)

// ClientStore caches the caller's client list. Fetch replaces the cache and
// records the outcome in the error slot; mutations keep the cache consistent
// with the server without a refetch. Delete is optimistic: the row disappears
// immediately and comes back if the server rejects the deletion.
type ClientStore struct {
	api *API

	mu      sync.Mutex
	clients []Client
	loading bool
	loaded  bool
	err     error
}

func NewClientStore(api *API) *ClientStore {
	return &ClientStore{api: api}
}

// Fetch reloads the list from the server. On error the previous cache is kept
// and the error is retained until the next successful Fetch.
func (s *ClientStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	clients, err := s.api.ListClients(ctx)

	s.mu.Lock()
	s.loading = false
	s.err = err
	if err == nil {
		s.clients = clients
		s.loaded = true
	}
	s.mu.Unlock()
	return err
}

// Clients returns a copy of the cached list.
func (s *ClientStore) Clients() []Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *ClientStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ClientStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Err returns the error of the most recent Fetch, nil after a successful one.
func (s *ClientStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Set replaces the cached list wholesale.
func (s *ClientStore) Set(clients []Client) {
	s.mu.Lock()
	s.clients = clients
	s.loaded = true
	s.mu.Unlock()
}

// Add prepends a row, matching the server's newest-first order.
func (s *ClientStore) Add(c Client) {
	s.mu.Lock()
	s.clients = append([]Client{c}, s.clients...)
	s.mu.Unlock()
}

// Replace swaps the row with the same id, if present.
func (s *ClientStore) Replace(c Client) {
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == c.ID {
			s.clients[i] = c
			break
		}
	}
	s.mu.Unlock()
}

// Remove drops the row with the given id, if present.
func (s *ClientStore) Remove(id string) {
	s.mu.Lock()
	s.clients = removeClient(s.clients, id)
	s.mu.Unlock()
}

// Create posts the new client and caches the server's row.
func (s *ClientStore) Create(ctx context.Context, req ClientRequest) (*Client, error) {
	created, err := s.api.CreateClient(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Add(*created)
	return created, nil
}

func (s *ClientStore) Update(ctx context.Context, id string, req ClientRequest) (*Client, error) {
	updated, err := s.api.UpdateClient(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.Replace(*updated)
	return updated, nil
}

// Delete removes the row locally first, then asks the server. If the server
// refuses, the snapshot taken before the removal is restored.
func (s *ClientStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	snapshot := make([]Client, len(s.clients))
	copy(snapshot, s.clients)
	s.clients = removeClient(s.clients, id)
	s.mu.Unlock()

	if err := s.api.DeleteClient(ctx, id); err != nil {
		s.mu.Lock()
		s.clients = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func removeClient(clients []Client, id string) []Client {
	out := make([]Client, 0, len(clients))
	for _, c := range clients {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// MissionStore caches the caller's mission list with the same contract as
// ClientStore.
type MissionStore struct {
	api *API

	mu       sync.Mutex
	missions []Mission
	loading  bool
	loaded   bool
	err      error
}

func NewMissionStore(api *API) *MissionStore {
	return &MissionStore{api: api}
}

func (s *MissionStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	missions, err := s.api.ListMissions(ctx)

	s.mu.Lock()
	s.loading = false
	s.err = err
	if err == nil {
		s.missions = missions
		s.loaded = true
	}
	s.mu.Unlock()
	return err
}

func (s *MissionStore) Missions() []Mission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Mission, len(s.missions))
	copy(out, s.missions)
	return out
}

func (s *MissionStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *MissionStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

func (s *MissionStore) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *MissionStore) Set(missions []Mission) {
	s.mu.Lock()
	s.missions = missions
	s.loaded = true
	s.mu.Unlock()
}

func (s *MissionStore) Add(m Mission) {
	s.mu.Lock()
	s.missions = append([]Mission{m}, s.missions...)
	s.mu.Unlock()
}

func (s *MissionStore) Replace(m Mission) {
	s.mu.Lock()
	for i := range s.missions {
		if s.missions[i].ID == m.ID {
			s.missions[i] = m
			break
		}
	}
	s.mu.Unlock()
}

func (s *MissionStore) Remove(id string) {
	s.mu.Lock()
	s.missions = removeMission(s.missions, id)
	s.mu.Unlock()
}

func (s *MissionStore) Create(ctx context.Context, req MissionRequest) (*Mission, error) {
	created, err := s.api.CreateMission(ctx, req)
	if err != nil {
		return nil, err
	}
	s.Add(*created)
	return created, nil
}

func (s *MissionStore) Update(ctx context.Context, id string, req MissionRequest) (*Mission, error) {
	updated, err := s.api.UpdateMission(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.Replace(*updated)
	return updated, nil
}

func (s *MissionStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	snapshot := make([]Mission, len(s.missions))
	copy(snapshot, s.missions)
	s.missions = removeMission(s.missions, id)
	s.mu.Unlock()

	if err := s.api.DeleteMission(ctx, id); err != nil {
		s.mu.Lock()
		s.missions = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func removeMission(missions []Mission, id string) []Mission {
	out := make([]Mission, 0, len(missions))
	for _, m := range missions {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// UserStore caches the current session's user. Bootstrap from the session
// endpoint; profile changes flow through UpdateProfile so the cache follows.
type UserStore struct {
	api *API

	mu      sync.Mutex
	session *Session
}

func NewUserStore(api *API) *UserStore {
	return &UserStore{api: api}
}

func (s *UserStore) Fetch(ctx context.Context) error {
	sess, err := s.api.Session(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
	return nil
}

// Session returns a copy of the cached session, or nil before Fetch.
func (s *UserStore) Session() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// Set replaces the cached session.
func (s *UserStore) Set(sess *Session) {
	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()
}

// UpdateProfile applies the change and refreshes the cached session from the
// server response.
func (s *UserStore) UpdateProfile(ctx context.Context, req ProfileRequest) (*User, error) {
	user, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return nil, err
	}
	cur := ""
	if user.Currency != nil {
		cur = *user.Currency
	}
	phone := ""
	if user.Phone != nil {
		phone = *user.Phone
	}
	s.Set(&Session{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Country:        user.Country,
		Currency:       cur,
		Phone:          phone,
		FreelancerType: user.FreelancerType,
	})
	return user, nil
}

func (s *UserStore) Clear() {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

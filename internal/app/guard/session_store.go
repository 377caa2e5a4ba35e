package guard

// Client session keys, mirrored by the web client's local storage.
const (
	KeyToken    = "token"
	KeyUserRole = "userRole"
	KeyUserName = "userName"
)

// SessionStore is the client-held session record: the issued token plus
// the display fields the dashboards read. Injected so the guard can be
// exercised without a browser storage layer behind it.
type SessionStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Clear()
}

// MemorySessionStore is a map-backed SessionStore. The zero value is not
// usable; construct with NewMemorySessionStore.
type MemorySessionStore struct {
	values map[string]string
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{values: make(map[string]string)}
}

func (s *MemorySessionStore) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *MemorySessionStore) Set(key, value string) {
	s.values[key] = value
}

func (s *MemorySessionStore) Clear() {
	s.values = make(map[string]string)
}

// SaveLogin persists a successful login the same way the web client does:
// token, role and display name written together.
func SaveLogin(store SessionStore, token, role, name string) {
	store.Set(KeyToken, token)
	store.Set(KeyUserRole, role)
	store.Set(KeyUserName, name)
}

// Logout clears the whole session record.
func Logout(store SessionStore) {
	store.Clear()
}

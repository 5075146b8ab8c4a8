// Package session tracks which account is current, whether it is
// unlocked, and keeps the account registry in sync with each account's
// document. Execution is single-threaded and UI-driven: the in-memory
// document is the source of truth and storage is a downstream mirror.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/Lanqingsong/DailyFlow/internal/logger"
	"github.com/Lanqingsong/DailyFlow/internal/migration"
	"github.com/Lanqingsong/DailyFlow/internal/models"
	"github.com/Lanqingsong/DailyFlow/internal/storage"
	"github.com/Lanqingsong/DailyFlow/internal/validation"
)

// Storage keys. The names predate the multi-account layout and are
// kept so existing stores keep working.
const (
	registryKey   = "dailyflow_users_registry"
	lastActiveKey = "dailyflow_last_user_id"
	legacyDataKey = "dailyflow_app_v3"
	dataKeyPrefix = "dailyflow_data_"
)

func dataKey(accountID string) string {
	return dataKeyPrefix + accountID
}

// ErrNoAccount is returned by operations that need a loaded account
// when none is current.
var ErrNoAccount = errors.New("no account loaded")

// Session owns the account registry, the current account's document,
// and the lock state. It is not safe for concurrent use; every
// operation is expected to complete before the next one is issued.
type Session struct {
	gw          storage.Gateway
	registry    []models.UserSummary
	doc         *models.AppData
	currentID   string
	lastActive  string
	authed      bool
	pickerGuard bool
	subscribers []func(*models.AppData)
}

// New loads the registry and last-active pointer. When the registry is
// absent but a legacy single-account document exists, that document is
// migrated into the multi-account layout first.
func New(gw storage.Gateway) (*Session, error) {
	s := &Session{gw: gw}

	data, err := gw.Get(registryKey)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &s.registry); err != nil {
			return nil, fmt.Errorf("failed to parse account registry: %w", err)
		}
	case errors.Is(err, storage.ErrNotFound):
		if err := s.adoptLegacyDocument(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("failed to read account registry: %w", err)
	}

	if data, err := gw.Get(lastActiveKey); err == nil {
		s.lastActive = string(data)
	}

	return s, nil
}

// adoptLegacyDocument performs the one-time migration from the
// single-account layout: the legacy document gets an account id, moves
// under its per-account key, and seeds a single-entry registry.
func (s *Session) adoptLegacyDocument() error {
	raw, err := s.gw.Get(legacyDataKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil // fresh install
	}
	if err != nil {
		return fmt.Errorf("failed to read legacy document: %w", err)
	}

	doc, _, err := migration.Parse(raw)
	if err != nil {
		// An unreadable legacy document is left in place rather than
		// destroyed; the store starts out with an empty registry.
		logger.Warn("legacy document is unreadable, skipping adoption", "error", err)
		return nil
	}

	if err := s.writeDocument(doc.User.ID, doc); err != nil {
		return err
	}
	s.registry = []models.UserSummary{doc.Summary()}
	if err := s.writeRegistry(); err != nil {
		return err
	}
	if err := s.setLastActive(doc.User.ID); err != nil {
		return err
	}
	if err := s.gw.Delete(legacyDataKey); err != nil {
		return fmt.Errorf("failed to erase legacy document: %w", err)
	}
	logger.Info("adopted legacy single-account document", "account", doc.User.ID)
	return nil
}

// Registry returns a copy of the account summaries.
func (s *Session) Registry() []models.UserSummary {
	out := make([]models.UserSummary, len(s.registry))
	copy(out, s.registry)
	return out
}

// LastActiveID returns the last account that was current, or "".
func (s *Session) LastActiveID() string {
	return s.lastActive
}

// CurrentID returns the current account id, or "" when none is loaded.
func (s *Session) CurrentID() string {
	return s.currentID
}

// Current returns the current in-memory document, nil when no account
// is loaded. Callers must treat it as read-only.
func (s *Session) Current() *models.AppData {
	return s.doc
}

// Authenticated reports whether the current account is unlocked.
func (s *Session) Authenticated() bool {
	return s.authed
}

// Subscribe registers a callback invoked with the document after every
// state change.
func (s *Session) Subscribe(fn func(*models.AppData)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Session) notify() {
	for _, fn := range s.subscribers {
		fn(s.doc)
	}
}

func (s *Session) writeDocument(accountID string, doc *models.AppData) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}
	if err := s.gw.Set(dataKey(accountID), data); err != nil {
		return fmt.Errorf("failed to store document: %w", err)
	}
	return nil
}

func (s *Session) writeRegistry() error {
	data, err := json.Marshal(s.registry)
	if err != nil {
		return fmt.Errorf("failed to serialize registry: %w", err)
	}
	if err := s.gw.Set(registryKey, data); err != nil {
		return fmt.Errorf("failed to store registry: %w", err)
	}
	return nil
}

func (s *Session) setLastActive(accountID string) error {
	s.lastActive = accountID
	if err := s.gw.Set(lastActiveKey, []byte(accountID)); err != nil {
		return fmt.Errorf("failed to store last-active pointer: %w", err)
	}
	return nil
}

// persist stores the current document and immediately reconciles its
// registry summary, in that order, before anything else reads the
// registry.
func (s *Session) persist() error {
	if s.doc == nil || s.currentID == "" {
		return ErrNoAccount
	}
	if err := s.writeDocument(s.currentID, s.doc); err != nil {
		return err
	}

	summary := s.doc.Summary()
	for i := range s.registry {
		if s.registry[i].ID == s.currentID {
			if s.registry[i] == summary {
				return nil
			}
			s.registry[i] = summary
			return s.writeRegistry()
		}
	}
	return nil
}

// commit persists the document after a mutation and notifies
// subscribers.
func (s *Session) commit() error {
	if err := s.persist(); err != nil {
		return err
	}
	s.notify()
	return nil
}

// DefaultAvatar returns the avatar reference assigned to new accounts.
func DefaultAvatar(name string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + strings.ReplaceAll(name, " ", "")
}

// CreateAccount builds a fresh seeded document under a new unique id,
// persists it, registers it, and makes it the active, authenticated
// session.
func (s *Session) CreateAccount(name, language, pin string) (models.UserSummary, error) {
	if strings.TrimSpace(name) == "" {
		return models.UserSummary{}, fmt.Errorf("account name is required")
	}
	if err := validation.ValidatePIN(pin); err != nil {
		return models.UserSummary{}, err
	}
	if language == "" {
		language = "zh"
	}
	if err := validation.ValidateLanguage(language); err != nil {
		return models.UserSummary{}, err
	}

	id := "user-" + uuid.New().String()
	doc := models.NewAppData(models.UserProfile{
		ID:       id,
		Name:     name,
		Avatar:   DefaultAvatar(name),
		PIN:      pin,
		Language: language,
	})

	if err := s.writeDocument(id, doc); err != nil {
		return models.UserSummary{}, err
	}
	summary := doc.Summary()
	s.registry = append(s.registry, summary)
	if err := s.writeRegistry(); err != nil {
		return models.UserSummary{}, err
	}
	if err := s.setLastActive(id); err != nil {
		return models.UserSummary{}, err
	}

	s.doc = doc
	s.currentID = id
	s.authed = true
	s.notify()
	return summary, nil
}

// SwitchAccount loads the given account's document (migrating it if
// needed) and makes it current but locked when a PIN is set. An empty
// id clears the current account entirely: the document is wiped from
// memory, not merely marked inactive.
func (s *Session) SwitchAccount(accountID string) error {
	if accountID == "" {
		s.doc = nil
		s.currentID = ""
		s.authed = false
		s.notify()
		return nil
	}

	raw, err := s.gw.Get(dataKey(accountID))
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("account not found: %s", accountID)
	}
	if err != nil {
		return fmt.Errorf("failed to read account document: %w", err)
	}

	doc, migrated, err := migration.Parse(raw)
	if err != nil {
		return fmt.Errorf("account document is unreadable: %w", err)
	}

	s.doc = doc
	s.currentID = accountID
	// A separate login step is required only when a PIN is set.
	s.authed = doc.User.PIN == ""

	if migrated {
		// Store the migrated form so future loads skip this work.
		if err := s.persist(); err != nil {
			return err
		}
	}
	if err := s.setLastActive(accountID); err != nil {
		return err
	}
	s.notify()
	return nil
}

// Login unlocks the current account iff the supplied PIN matches its
// configured PIN. Accounts without a PIN have nothing to match
// against, so any input fails; they are unlocked on switch instead.
// There is no lockout or rate limit: this is a convenience gate, not a
// security boundary.
func (s *Session) Login(pin string) bool {
	if s.doc == nil || s.doc.User.PIN == "" {
		return false
	}
	if pin != s.doc.User.PIN {
		return false
	}
	s.authed = true
	return true
}

// Logout locks the current account when it has a PIN, keeping the
// document resident. Without a PIN there is no way to re-authenticate,
// so logout clears the account entirely.
func (s *Session) Logout() error {
	if s.doc == nil {
		return nil
	}
	if s.doc.User.PIN != "" {
		s.authed = false
		return nil
	}
	return s.SwitchAccount("")
}

// DeleteAccount irreversibly erases an account's document and registry
// entry. Deleting the current account also clears the last-active
// pointer and the in-memory session.
func (s *Session) DeleteAccount(accountID string) error {
	if err := s.gw.Delete(dataKey(accountID)); err != nil {
		return fmt.Errorf("failed to erase account document: %w", err)
	}

	registry := s.registry[:0]
	for _, u := range s.registry {
		if u.ID != accountID {
			registry = append(registry, u)
		}
	}
	s.registry = registry
	if err := s.writeRegistry(); err != nil {
		return err
	}

	if accountID == s.currentID {
		s.lastActive = ""
		if err := s.gw.Delete(lastActiveKey); err != nil {
			return fmt.Errorf("failed to clear last-active pointer: %w", err)
		}
		return s.SwitchAccount("")
	}
	return nil
}

// AppHidden is the hosting UI's hidden/backgrounded signal. It revokes
// authentication when the current account has a PIN, unless an
// external picker is in progress.
func (s *Session) AppHidden() {
	if s.pickerGuard {
		return
	}
	if s.doc != nil && s.doc.User.PIN != "" {
		s.authed = false
	}
}

// BeginExternalPicker suppresses auto-locking for the duration of a
// native file/camera chooser. The caller must pair it with
// EndExternalPicker.
func (s *Session) BeginExternalPicker() {
	s.pickerGuard = true
}

// EndExternalPicker re-enables auto-locking.
func (s *Session) EndExternalPicker() {
	s.pickerGuard = false
}

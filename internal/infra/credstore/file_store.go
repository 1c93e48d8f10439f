// Package credstore persists the token pair in a local JSON file, the
// client-side analogue of per-origin browser storage.
package credstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"billdesk/config"
	domainerrors "billdesk/internal/domain/errors"
	"billdesk/internal/domain/repository"
	"billdesk/internal/errors"

	"go.uber.org/fx"
)

// fileStore keeps both tokens in one JSON document and replaces the whole
// file on every write, so the pair is always observed together.
type fileStore struct {
	path   string
	logger *slog.Logger

	mu sync.Mutex
}

type credentialFile struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Params defines the parameters required for the credential store.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewFileStore is the constructor for fileStore.
func NewFileStore(params Params) repository.CredentialStore {
	return &fileStore{
		path:   params.Config.Credentials.Path,
		logger: params.Logger,
	}
}

// Get returns the stored value for key, or ErrCredentialNotFound.
func (s *fileStore) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return "", err
	}

	value, err := valueFor(doc, key)
	if err != nil {
		return "", err
	}
	if value == "" {
		return "", errors.WithStack(repository.ErrCredentialNotFound)
	}

	return value, nil
}

// Set stores value under key, preserving the other token.
func (s *fileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	switch key {
	case repository.KeyAccessToken:
		doc.AccessToken = value
	case repository.KeyRefreshToken:
		doc.RefreshToken = value
	default:
		return errors.Errorf("unrecognized credential key: %s", key)
	}

	return s.write(doc)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *fileStore) Remove(key string) error {
	return s.Set(key, "")
}

// SetPair stores both tokens in a single atomic file replace.
func (s *fileStore) SetPair(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(&credentialFile{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// ClearPair removes both tokens in a single atomic file replace.
func (s *fileStore) ClearPair() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(&credentialFile{})
}

func valueFor(doc *credentialFile, key string) (string, error) {
	switch key {
	case repository.KeyAccessToken:
		return doc.AccessToken, nil
	case repository.KeyRefreshToken:
		return doc.RefreshToken, nil
	default:
		return "", errors.Errorf("unrecognized credential key: %s", key)
	}
}

func (s *fileStore) read() (*credentialFile, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &credentialFile{}, nil
		}

		return nil, domainerrors.ErrStorageUnavailable.WrapMessage("failed to read credential file")
	}

	doc := &credentialFile{}
	if err := json.Unmarshal(raw, doc); err != nil {
		// A corrupt file is unusable storage, not a hard failure.
		s.logger.Warn("Credential file is corrupt, treating as empty", slog.String("path", s.path), slog.Any("error", err))

		return nil, domainerrors.ErrStorageUnavailable.WrapMessage("credential file is corrupt")
	}

	return doc, nil
}

// write replaces the credential file via temp file + rename so readers never
// observe a partially written pair.
func (s *fileStore) write(doc *credentialFile) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode credential file")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return domainerrors.ErrStorageUnavailable.WrapMessage("failed to create credential directory")
	}

	tmp, err := os.CreateTemp(dir, ".credentials-*")
	if err != nil {
		return domainerrors.ErrStorageUnavailable.WrapMessage("failed to create temp credential file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return domainerrors.ErrStorageUnavailable.WrapMessage("failed to write credential file")
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)

		return domainerrors.ErrStorageUnavailable.WrapMessage("failed to set credential file permissions")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)

		return domainerrors.ErrStorageUnavailable.WrapMessage("failed to close credential file")
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)

		return domainerrors.ErrStorageUnavailable.WrapMessage("failed to replace credential file")
	}

	return nil
}

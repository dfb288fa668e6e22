package data

import (
	"time"

	"github.com/SapphicFire/ingress-intel-total-conversion/internal/biz/repo"
)

// Repositories contains all repositories
type Repositories struct {
	Transport repo.Transport
	Prefs     repo.PrefsRepo
}

// NewRepositories creates all repositories
func NewRepositories(baseURL string, requestTimeout time.Duration, prefsDBPath string) (*Repositories, error) {
	prefsRepo, err := NewPrefsRepo(prefsDBPath)
	if err != nil {
		return nil, err
	}

	return &Repositories{
		Transport: NewIntelTransport(baseURL, requestTimeout),
		Prefs:     prefsRepo,
	}, nil
}

package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/moodbite/moodbite/internal/model"
)

// SeedFile is the YAML document accepted by `moodbite seed --users`.
type SeedFile struct {
	Users []SeedUser `yaml:"users"`
}

// SeedUser is one registered diner in a seed file.
type SeedUser struct {
	ID    int    `yaml:"id"`
	Email string `yaml:"email"`
	Name  string `yaml:"name"`
}

// LoadSeedUsers reads and validates a YAML seed file and returns the
// users ready to insert into a fresh state.
func LoadSeedUsers(path string) ([]model.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	var file SeedFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}
	if len(file.Users) == 0 {
		return nil, fmt.Errorf("seed file %s contains no users", path)
	}

	seenIDs := make(map[int]bool, len(file.Users))
	seenEmails := make(map[string]bool, len(file.Users))
	users := make([]model.User, 0, len(file.Users))
	for i, u := range file.Users {
		if u.ID <= 0 {
			return nil, fmt.Errorf("seed file %s: users[%d]: id must be positive", path, i)
		}
		if u.Email == "" {
			return nil, fmt.Errorf("seed file %s: users[%d]: email is required", path, i)
		}
		if u.Name == "" {
			return nil, fmt.Errorf("seed file %s: users[%d]: name is required", path, i)
		}
		if seenIDs[u.ID] {
			return nil, fmt.Errorf("seed file %s: duplicate user id %d", path, u.ID)
		}
		if seenEmails[u.Email] {
			return nil, fmt.Errorf("seed file %s: duplicate user email %q", path, u.Email)
		}
		seenIDs[u.ID] = true
		seenEmails[u.Email] = true

		users = append(users, model.User{ID: u.ID, Email: u.Email, Name: u.Name})
	}
	return users, nil
}

// DemoUsers returns the built-in demo accounts used when no seed file
// is given.
func DemoUsers() []model.User {
	return []model.User{
		{ID: 1, Email: "alex@example.com", Name: "Alex"},
		{ID: 2, Email: "sam@example.com", Name: "Sam"},
	}
}

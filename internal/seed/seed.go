// Package seed loads the built-in planet and character catalog and creates
// demo users for development and testing.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"holocron/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed catalog.yaml
var catalogYAML []byte

// DemoPassword is the password every generated user gets.
const DemoPassword = "password123"

// CatalogFile is the shape of catalog.yaml.
type CatalogFile struct {
	Planets    []PlanetEntry    `yaml:"planets"`
	Characters []CharacterEntry `yaml:"characters"`
}

type PlanetEntry struct {
	Name       string `yaml:"name"`
	Climate    string `yaml:"climate"`
	Terrain    string `yaml:"terrain"`
	Population string `yaml:"population"`
}

type CharacterEntry struct {
	Name   string `yaml:"name"`
	Gender string `yaml:"gender"`
	Height string `yaml:"height"`
	Mass   string `yaml:"mass"`
}

// Result counts rows inserted by a seeding run. Rows that already existed
// are not counted.
type Result struct {
	Planets    int
	Characters int
	Users      int
}

// ParseCatalog decodes a catalog document. Entries without a name are rejected.
func ParseCatalog(data []byte) (*CatalogFile, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for i, p := range file.Planets {
		if strings.TrimSpace(p.Name) == "" {
			return nil, fmt.Errorf("parse catalog: planet %d has no name", i)
		}
	}
	for i, c := range file.Characters {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("parse catalog: character %d has no name", i)
		}
	}
	return &file, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() (*CatalogFile, error) {
	return ParseCatalog(catalogYAML)
}

// Catalog inserts every planet and character of file that is not already
// present, matching by name. Running it twice inserts nothing the second time.
func Catalog(ctx context.Context, db *gorm.DB, file *CatalogFile) (Result, error) {
	var res Result
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		planetsBefore, err := countRows(tx, &models.Planet{})
		if err != nil {
			return err
		}
		for _, p := range file.Planets {
			row := models.Planet{Name: p.Name, Climate: p.Climate, Terrain: p.Terrain, Population: p.Population}
			if err := tx.Where(models.Planet{Name: p.Name}).Attrs(row).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed planet %s: %w", p.Name, err)
			}
		}
		planetsAfter, err := countRows(tx, &models.Planet{})
		if err != nil {
			return err
		}

		charactersBefore, err := countRows(tx, &models.Character{})
		if err != nil {
			return err
		}
		for _, c := range file.Characters {
			row := models.Character{Name: c.Name, Gender: c.Gender, Height: c.Height, Mass: c.Mass}
			if err := tx.Where(models.Character{Name: c.Name}).Attrs(row).FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed character %s: %w", c.Name, err)
			}
		}
		charactersAfter, err := countRows(tx, &models.Character{})
		if err != nil {
			return err
		}

		res.Planets = int(planetsAfter - planetsBefore)
		res.Characters = int(charactersAfter - charactersBefore)
		return nil
	})
	return res, err
}

func countRows(tx *gorm.DB, model interface{}) (int64, error) {
	var n int64
	if err := tx.Model(model).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %T: %w", model, err)
	}
	return n, nil
}

// Users creates n fake users with DemoPassword. Usernames carry a random
// suffix so repeated runs do not collide.
func Users(ctx context.Context, db *gorm.DB, n int, cost int) ([]models.User, error) {
	if n <= 0 {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash demo password: %w", err)
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		handle := strings.ToLower(gofakeit.Username()) + "_" + gofakeit.LetterN(4)
		handle = strings.Map(usernameRune, handle)
		users = append(users, models.User{
			Username: handle,
			Email:    strings.ToLower(handle + "@" + gofakeit.DomainName()),
			Password: string(hash),
		})
	}

	if err := db.WithContext(ctx).CreateInBatches(&users, 100).Error; err != nil {
		return nil, fmt.Errorf("create users: %w", err)
	}
	return users, nil
}

// usernameRune keeps the characters validation.ValidateUsername accepts.
func usernameRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r
	case r == '_' || r == '.' || r == '-':
		return r
	case r == ' ':
		return '_'
	default:
		return -1
	}
}

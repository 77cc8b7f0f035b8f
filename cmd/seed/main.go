package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"sanad-backend/internal/config"
	"sanad-backend/internal/domains/page"
	"sanad-backend/internal/infrastructure/database"
	"sanad-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(1)
	}
	logger.Init(cfg.App.Environment)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := database.NewPostgresDB(&cfg.Database)
	if err := db.Connect(ctx); err != nil {
		log.Error().Err(err).Msg("connect database")
		os.Exit(1)
	}
	defer db.Close()

	if err := seedAdmin(ctx, db); err != nil {
		log.Error().Err(err).Msg("seed admin user")
		os.Exit(1)
	}
	if err := seedPages(ctx, db); err != nil {
		log.Error().Err(err).Msg("seed pages")
		os.Exit(1)
	}

	log.Info().Msg("seed complete")
}

func seedAdmin(ctx context.Context, db *database.PostgresDB) error {
	email := getEnv("SEED_ADMIN_EMAIL", "admin@sanadstudio.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "change-me-on-first-login")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	tag, err := db.Pool.Exec(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO NOTHING`,
		"Admin", email, string(hash))
	if err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}

	if tag.RowsAffected() == 0 {
		log.Info().Str("email", email).Msg("admin user already exists")
	} else {
		log.Info().Str("email", email).Msg("admin user created")
	}
	return nil
}

// seedPages installs the site's default sections with starter bilingual
// content. Existing sections are left untouched.
func seedPages(ctx context.Context, db *database.PostgresDB) error {
	sections := map[string]page.LanguageData{
		"hero": {
			"en": {
				"title":    "Build what matters",
				"subtitle": "We turn corporate challenges into ventures",
				"cta":      "Partner with us",
			},
			"ar": {
				"title":    "ابنِ ما يهم",
				"subtitle": "نحول تحديات الشركات إلى مشاريع",
				"cta":      "شاركنا",
			},
		},
		"corporate_innovation": {
			"en": {
				"title":       "Corporate Innovation",
				"description": "We help enterprises discover, validate and launch new ventures.",
			},
			"ar": {
				"title":       "الابتكار المؤسسي",
				"description": "نساعد المؤسسات على اكتشاف المشاريع الجديدة والتحقق منها وإطلاقها.",
			},
		},
		"how_we_work": {
			"en": {
				"title": "How we work",
				"step1": "Discover",
				"step2": "Validate",
				"step3": "Build",
				"step4": "Scale",
			},
			"ar": {
				"title": "كيف نعمل",
				"step1": "اكتشف",
				"step2": "تحقق",
				"step3": "ابنِ",
				"step4": "توسّع",
			},
		},
		"partner_with_us": {
			"en": {
				"title":       "Partner with us",
				"description": "Tell us about your organization and the opportunity you see.",
			},
			"ar": {
				"title":       "شاركنا",
				"description": "أخبرنا عن مؤسستك والفرصة التي تراها.",
			},
		},
	}

	for section, data := range sections {
		payload, err := json.Marshal(data)
		if err != nil {
			return fmt.Errorf("marshal section %s: %w", section, err)
		}

		tag, err := db.Pool.Exec(ctx, `
			INSERT INTO pages (section_name, data, is_active)
			VALUES ($1, $2, true)
			ON CONFLICT (section_name) DO NOTHING`,
			section, payload)
		if err != nil {
			return fmt.Errorf("insert section %s: %w", section, err)
		}

		if tag.RowsAffected() > 0 {
			log.Info().Str("section", section).Msg("section seeded")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

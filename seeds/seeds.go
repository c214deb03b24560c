// Package seeds holds the sample audiobook catalog and inserts it into
// Postgres-backed deployments. The in-memory store consumes Catalog
// directly.
package seeds

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/audiovibe/audiovibe/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Catalog returns the sample audiobook catalog without IDs assigned; the
// consuming store owns ID assignment.
func Catalog() []domain.Content {
	return []domain.Content{
		{
			Title:                "The CEO's Secret Love",
			Description:          "When ambitious MBA graduate Sarah lands her dream job, she never expected to fall for her mysterious CEO who harbors dark secrets about his past...",
			Category:             "romance",
			Duration:             "4h 32m",
			Rating:               "4.8",
			Thumbnail:            "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:            15200,
			Tags:                 []string{"CEO", "workplace romance", "secrets", "contemporary"},
			Narrator:             "Emma Thompson",
			TotalDurationMinutes: 272,
		},
		{
			Title:       "Blood Moon Rising",
			Description: "Detective Maria Santos thought she'd seen it all until bodies start appearing with mysterious bite marks during the blood moon...",
			Category:    "thriller",
			Duration:    "42m",
			Rating:      "4.6",
			Thumbnail:   "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   9800,
		},
		{
			Title:       "Café Chronicles",
			Description: "Join barista Jake as he navigates hilarious customer encounters, workplace romance, and the daily chaos of running the city's busiest café...",
			Category:    "comedy",
			Duration:    "28m",
			Rating:      "4.9",
			Thumbnail:   "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   22400,
		},
		{
			Title:       "Family Secrets",
			Description: "When Emma returns home for her father's funeral, she uncovers family secrets that threaten to tear apart everything she thought she knew...",
			Category:    "drama",
			Duration:    "6h 15m",
			Rating:      "4.7",
			Thumbnail:   "https://images.unsplash.com/photo-1556745753-b2904692b3cd?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   8700,
		},
		{
			Title:       "Nova Station",
			Description: "In the year 2387, Commander Riley leads humanity's last hope aboard the space station Nova as alien forces threaten Earth's survival...",
			Category:    "sci-fi",
			Duration:    "8h 22m",
			Rating:      "4.5",
			Thumbnail:   "https://images.unsplash.com/photo-1446776653964-20c1d3a81b06?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   12100,
		},
		{
			Title:       "Dragon's Crown",
			Description: "Young mage Aria discovers she's the last of an ancient bloodline destined to reclaim the Dragon's Crown and save the magical realm of Eldoria...",
			Category:    "fantasy",
			Duration:    "12h 45m",
			Rating:      "4.8",
			Thumbnail:   "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   18900,
		},
		{
			Title:       "The Last Pharaoh",
			Description: "Journey back to ancient Egypt as we uncover the untold story of Cleopatra's final days and the Roman conspiracy that sealed her fate...",
			Category:    "historical",
			Duration:    "9h 18m",
			Rating:      "4.6",
			Thumbnail:   "https://images.unsplash.com/photo-1539650116574-75c0c6d0c0c3?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   7600,
		},
		{
			Title:       "Missing Hours",
			Description: "Private investigator Alex Chen has 48 hours to solve a missing person case that leads to a web of corruption reaching the highest levels of government...",
			Category:    "mystery",
			Duration:    "55m",
			Rating:      "4.7",
			Thumbnail:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   10400,
		},
		{
			Title:       "Billionaire's Revenge",
			Description: "Tech mogul Adrian Kane will stop at nothing to destroy the woman who betrayed him, but what happens when revenge turns into obsession?",
			Category:    "romance",
			Duration:    "5h 12m",
			Rating:      "4.7",
			Thumbnail:   "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   14300,
		},
		{
			Title:       "Stand-Up Struggles",
			Description: "Follow comedian Mike Torres as he bombs, succeeds, and everything in between on his journey from open mic nights to comedy stardom...",
			Category:    "comedy",
			Duration:    "35m",
			Rating:      "4.6",
			Thumbnail:   "https://images.unsplash.com/photo-1501594907352-04cda38ebc29?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   9200,
		},
		{
			Title:       "The Escape Room",
			Description: "Six strangers wake up in an elaborate escape room where failure means death. But who put them there and why?",
			Category:    "thriller",
			Duration:    "1h 15m",
			Rating:      "4.4",
			Thumbnail:   "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   8100,
		},
		{
			Title:       "Immortal Hearts",
			Description: "Vampire prince Damien has lived for centuries until he meets mortal artist Luna, forcing him to choose between his immortal duty and true love...",
			Category:    "fantasy",
			Duration:    "7h 30m",
			Rating:      "4.9",
			Thumbnail:   "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			PlayCount:   20500,
		},
	}
}

// Setup truncates and reseeds the Postgres catalog.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE user_ratings, listening_history, user_favorites, user_preferences, audio_content RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting catalog")
	if err := seedContent(ctx, pool, Catalog()); err != nil {
		return fmt.Errorf("seed content: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func seedContent(ctx context.Context, pool *pgxpool.Pool, items []domain.Content) error {
	rows := []string{}
	args := []any{}

	for _, item := range items {
		base := len(args)
		placeholders := make([]string, 10)
		for p := range placeholders {
			placeholders[p] = fmt.Sprintf("$%d", base+p+1)
		}
		rows = append(rows, "("+strings.Join(placeholders, ", ")+")")

		args = append(args,
			item.Title, item.Description, item.Category, item.Duration,
			item.Rating, item.Thumbnail, item.PlayCount, item.Tags,
			item.Narrator, item.TotalDurationMinutes,
		)
	}

	if len(rows) == 0 {
		return nil
	}

	query := `INSERT INTO audio_content
		(title, description, category, duration, rating, thumbnail, play_count, tags, narrator, total_duration_minutes)
		VALUES ` + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

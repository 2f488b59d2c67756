package main

import (
	"log"
	"sciencepress/database"
	"sciencepress/internal/models"
	"sciencepress/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

// Seeds the database variant with the same sample content the file
// store starts from.
func main() {
	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	users := []models.User{
		{Name: "Élève 1 - 3eB", Email: "eleve1@classe.example", Password: utils.HashPassword("ChangeMe123!"), Role: "admin", Active: true},
		{Name: "Élève 2 - 3eB", Email: "eleve2@classe.example", Password: utils.HashPassword("ChangeMe123!"), Role: "admin", Active: true},
		{Name: "Élève 3 - 3eB", Email: "eleve3@classe.example", Password: utils.HashPassword("ChangeMe123!"), Role: "admin", Active: true},
	}
	for i := range users {
		if err := database.DB.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Email, err)
		}
	}
	log.Printf("Seeded %d users", len(users))

	articles := []models.Article{
		{
			Title:   "La photosynthèse : le secret de la vie végétale",
			Summary: "Découvrez comment les plantes transforment la lumière du soleil en énergie chimique.",
			Content: models.ContentBlocks{
				{ID: "1", Type: "paragraph", Content: "La photosynthèse est un processus biologique fondamental qui permet aux plantes de convertir l'énergie lumineuse en énergie chimique."},
				{ID: "2", Type: "heading", Content: "Le processus en détail", Level: 2},
				{ID: "3", Type: "paragraph", Content: "La photosynthèse se déroule dans les chloroplastes des cellules végétales."},
			},
			Category: "Biologie",
			Tags:     models.Tags{"photosynthèse", "plantes", "oxygène"},
			Sources: models.Sources{
				{ID: "1", Type: "url", Value: "https://www.cea.fr/comprendre/Pages/physique-chimie/photosynthese.aspx", Title: "CEA - La photosynthèse"},
			},
			ImageURL: "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=800&q=80",
			Status:   models.StatusPublished,
		},
		{
			Title:   "Les énergies renouvelables : un avenir durable",
			Summary: "Explorez les différentes sources d'énergies renouvelables.",
			Content: models.ContentBlocks{
				{ID: "1", Type: "paragraph", Content: "Les énergies renouvelables sont des sources d'énergie qui se renouvellent naturellement."},
				{ID: "2", Type: "heading", Content: "Les principales sources", Level: 2},
				{ID: "3", Type: "list", Content: "Types d'énergies renouvelables", Items: []string{"Énergie solaire", "Énergie éolienne", "Énergie hydraulique"}},
			},
			Category: "Environnement",
			Tags:     models.Tags{"énergies renouvelables", "climat"},
			Sources: models.Sources{
				{ID: "1", Type: "url", Value: "https://www.ademe.fr/", Title: "ADEME"},
			},
			ImageURL: "https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=800&q=80",
			Status:   models.StatusPublished,
		},
		{
			Title:   "L'ADN : le code de la vie",
			Summary: "Plongez dans le monde fascinant de l'ADN.",
			Content: models.ContentBlocks{
				{ID: "1", Type: "paragraph", Content: "L'acide désoxyribonucléique (ADN) est une molécule présente dans toutes les cellules vivantes."},
				{ID: "2", Type: "heading", Content: "Structure de la double hélice", Level: 2},
				{ID: "3", Type: "paragraph", Content: "Découverte en 1953 par James Watson et Francis Crick."},
			},
			Category: "Génétique",
			Tags:     models.Tags{"ADN", "génétique"},
			Sources: models.Sources{
				{ID: "1", Type: "url", Value: "https://www.inserm.fr/", Title: "INSERM"},
			},
			ImageURL: "https://images.unsplash.com/photo-1532187863486-abf9dbad1b69?w=800&q=80",
			Status:   models.StatusPublished,
		},
	}
	for i := range articles {
		if err := database.DB.Where("title = ?", articles[i].Title).FirstOrCreate(&articles[i]).Error; err != nil {
			log.Fatalf("Failed to seed article %q: %v", articles[i].Title, err)
		}
	}
	log.Printf("Seeded %d articles", len(articles))
}

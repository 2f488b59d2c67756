package filestore

import "sciencepress/internal/models"

func strPtr(s string) *string { return &s }

// defaultDataset is the sample content installed when no data file
// exists yet: three published science articles and the class admins.
func defaultDataset() dataset {
	return dataset{
		Articles: []Article{
			{
				ID:      "1",
				Title:   "La photosynthèse : le secret de la vie végétale",
				Summary: "Découvrez comment les plantes transforment la lumière du soleil en énergie chimique.",
				Content: []models.ContentBlock{
					{ID: "1", Type: "paragraph", Content: "La photosynthèse est un processus biologique fondamental qui permet aux plantes de convertir l'énergie lumineuse en énergie chimique."},
					{ID: "2", Type: "heading", Content: "Le processus en détail", Level: 2},
					{ID: "3", Type: "paragraph", Content: "La photosynthèse se déroule dans les chloroplastes des cellules végétales."},
				},
				Category: "Biologie",
				Tags:     []string{"photosynthèse", "plantes", "oxygène"},
				Sources: []models.Source{
					{ID: "1", Type: "url", Value: "https://www.cea.fr/comprendre/Pages/physique-chimie/photosynthese.aspx", Title: "CEA - La photosynthèse"},
				},
				ImageURL:  strPtr("https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=800&q=80"),
				Status:    models.StatusPublished,
				CreatedAt: "2024-11-15T10:00:00Z",
				UpdatedAt: "2024-11-15T10:00:00Z",
			},
			{
				ID:      "2",
				Title:   "Les énergies renouvelables : un avenir durable",
				Summary: "Explorez les différentes sources d'énergies renouvelables.",
				Content: []models.ContentBlock{
					{ID: "1", Type: "paragraph", Content: "Les énergies renouvelables sont des sources d'énergie qui se renouvellent naturellement."},
					{ID: "2", Type: "heading", Content: "Les principales sources", Level: 2},
					{ID: "3", Type: "list", Content: "Types d'énergies renouvelables", Items: []string{"Énergie solaire", "Énergie éolienne", "Énergie hydraulique"}},
				},
				Category: "Environnement",
				Tags:     []string{"énergies renouvelables", "climat"},
				Sources: []models.Source{
					{ID: "1", Type: "url", Value: "https://www.ademe.fr/", Title: "ADEME"},
				},
				ImageURL:  strPtr("https://images.unsplash.com/photo-1473341304170-971dccb5ac1e?w=800&q=80"),
				Status:    models.StatusPublished,
				CreatedAt: "2024-11-20T14:30:00Z",
				UpdatedAt: "2024-11-20T14:30:00Z",
			},
			{
				ID:      "3",
				Title:   "L'ADN : le code de la vie",
				Summary: "Plongez dans le monde fascinant de l'ADN.",
				Content: []models.ContentBlock{
					{ID: "1", Type: "paragraph", Content: "L'acide désoxyribonucléique (ADN) est une molécule présente dans toutes les cellules vivantes."},
					{ID: "2", Type: "heading", Content: "Structure de la double hélice", Level: 2},
					{ID: "3", Type: "paragraph", Content: "Découverte en 1953 par James Watson et Francis Crick."},
				},
				Category: "Génétique",
				Tags:     []string{"ADN", "génétique"},
				Sources: []models.Source{
					{ID: "1", Type: "url", Value: "https://www.inserm.fr/", Title: "INSERM"},
				},
				ImageURL:  strPtr("https://images.unsplash.com/photo-1532187863486-abf9dbad1b69?w=800&q=80"),
				Status:    models.StatusPublished,
				CreatedAt: "2024-11-25T09:15:00Z",
				UpdatedAt: "2024-11-25T09:15:00Z",
			},
		},
		Users: []User{
			{ID: "1", Name: "Élève 1 - 3eB", Role: "admin", Active: true, CreatedAt: "2024-09-01T08:00:00Z"},
			{ID: "2", Name: "Élève 2 - 3eB", Role: "admin", Active: true, CreatedAt: "2024-09-01T08:00:00Z"},
			{ID: "3", Name: "Élève 3 - 3eB", Role: "admin", Active: true, CreatedAt: "2024-09-01T08:00:00Z"},
		},
		Subscribers: []Subscriber{},
	}
}

package entity

import "time"

type BlogPost struct {
	ID         string    `json:"id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt,omitempty"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

type AdminAd struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	ImageURL    string `json:"imageUrl"`
	TargetURL   string `json:"targetUrl,omitempty"`
	Placement   string `json:"placement"`
	Active      bool   `json:"active"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
}

package repository

import "github.com/Rajan167030/portfolio/internal/models"

// samplePosts mirrors the content the admin panel ships with before any real
// post is written.
func samplePosts() []models.BlogPost {
	author := models.Author{
		Name:   "Rajan Jha",
		Avatar: "/placeholder.svg?height=100&width=100&text=RJ",
	}

	return []models.BlogPost{
		{
			ID:          "1",
			Title:       "Building Modern Web Applications with Next.js 15",
			Excerpt:     "Explore the latest features in Next.js 15 and how they can revolutionize your web development workflow.",
			Content:     "# Building Modern Web Applications with Next.js 15\n\nNext.js 15 has arrived...",
			Image:       "/placeholder.svg?height=400&width=600&text=Next.js+15",
			Author:      author,
			PublishedAt: "2024-01-15",
			ReadingTime: 8,
			Category:    "Web Development",
			Tags:        []string{"Next.js", "React", "JavaScript"},
			Slug:        "building-modern-web-applications-nextjs-15",
			Featured:    true,
			Published:   true,
			Views:       1250,
			Likes:       42,
		},
		{
			ID:          "2",
			Title:       "The Future of AI in Web Development",
			Excerpt:     "How artificial intelligence is transforming the way we build websites and applications.",
			Content:     "# The Future of AI in Web Development\n\nAI is changing everything...",
			Image:       "/placeholder.svg?height=400&width=600&text=AI+Development",
			Author:      author,
			PublishedAt: "2024-01-10",
			ReadingTime: 12,
			Category:    "Artificial Intelligence",
			Tags:        []string{"AI", "Machine Learning", "Web Development"},
			Slug:        "future-of-ai-in-web-development",
			Featured:    false,
			Published:   true,
			Views:       890,
			Likes:       28,
		},
	}
}

func sampleComments() []models.Comment {
	return []models.Comment{
		{
			ID:          "1",
			PostID:      "1",
			Author:      "John Doe",
			Email:       "john@example.com",
			Content:     "Great article! Very informative.",
			PublishedAt: "2024-01-16",
			Approved:    true,
		},
		{
			ID:          "2",
			PostID:      "1",
			Author:      "Jane Smith",
			Email:       "jane@example.com",
			Content:     "Thanks for sharing this. Looking forward to more content.",
			PublishedAt: "2024-01-17",
			Approved:    false,
		},
	}
}

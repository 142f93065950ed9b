package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Prajwal-sudo-600/AEGIS/auth"
	"github.com/Prajwal-sudo-600/AEGIS/pkg/jwt"
)

// NewRouter wires every endpoint. Read endpoints take identity optionally
// for personalization; mutations require it.
func NewRouter(
	jwtManager *jwt.Manager,
	feed *FeedHandler,
	network *NetworkHandler,
	profile *ProfileHandler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.Optional(jwtManager))

			r.Get("/feed", feed.GetFeed)
			r.Get("/posts/{id}", feed.GetPost)
			r.Get("/posts/{id}/comments", feed.GetComments)
			r.Get("/users/{id}/posts", feed.GetUserPosts)
			r.Get("/network", network.ListUsers)
			r.Get("/profile/{id}", profile.GetProfile)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Require(jwtManager))

			r.Post("/posts", feed.CreatePost)
			r.Put("/posts/{id}", feed.UpdatePost)
			r.Delete("/posts/{id}", feed.DeletePost)
			r.Post("/posts/{id}/like", feed.ToggleLike)
			r.Post("/posts/{id}/comments", feed.AddComment)
			r.Delete("/comments/{id}", feed.DeleteComment)

			r.Post("/network/{id}/follow", network.ToggleFollow)

			r.Get("/profile", profile.GetOwnProfile)
			r.Put("/profile", profile.UpdateProfile)
			r.Post("/profile/avatar", profile.UploadAvatar)
			r.Post("/uploads/post-image", profile.UploadPostImage)
		})
	})

	return r
}

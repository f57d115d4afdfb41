package routes

import (
	"github.com/gin-gonic/gin"

	"postboard/controllers"
	"postboard/repository"
	"postboard/search"
	"postboard/services"
)

func SetupPostRoutes(r *gin.Engine, auth gin.HandlerFunc, store repository.Store, indexer search.Indexer) {
	postService := services.NewPostService(store, indexer)
	postController := controllers.NewPostController(postService)
	commentController := controllers.NewCommentController(services.NewCommentService(store))
	searchController := controllers.NewSearchController(postService)

	posts := r.Group("/posts")
	{
		posts.GET("/:ref", postController.Show)
		posts.POST("", auth, postController.Create)
		posts.PUT("/:id", auth, postController.Update)
		posts.DELETE("/:id", auth, postController.Delete)
		posts.POST("/:id/comments", auth, commentController.Create)
	}

	comments := r.Group("/comments", auth)
	{
		comments.PUT("/:commentId", commentController.Update)
		comments.DELETE("/:commentId", commentController.Delete)
	}

	r.GET("/search/posts", searchController.SearchPosts)
}

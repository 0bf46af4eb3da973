package routers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rewiselabs/rewise_neet_backend/controllers"
)

func SetupRoutes(app *fiber.App) {

	api := app.Group("/api")

	//Users
	users := api.Group("/users")
	users.Post("/", controllers.CreateUser)
	users.Get("/", controllers.GetUsers)
	users.Get("/:id", controllers.GetUserByID)
	users.Patch("/:id", controllers.EditUser)
	users.Delete("/:id", controllers.DeleteUser)

	//Subjects, chapters and topics
	subjects := api.Group("/subjects")
	subjects.Post("/", controllers.CreateSubject)
	subjects.Get("/", controllers.GetSubjects)
	subjects.Get("/:id/chapters", controllers.GetChaptersBySubject)
	subjects.Post("/:id/chapters", controllers.CreateChapter)
	subjects.Get("/:id", controllers.GetSubjectByID)
	subjects.Patch("/:id", controllers.EditSubject)
	subjects.Delete("/:id", controllers.DeleteSubject)

	chapters := api.Group("/chapters")
	chapters.Get("/:id/topics", controllers.GetTopicsByChapter)
	chapters.Post("/:id/topics", controllers.CreateTopic)
	chapters.Get("/:id", controllers.GetChapterByID)
	chapters.Patch("/:id", controllers.EditChapter)
	chapters.Delete("/:id", controllers.DeleteChapter)

	topics := api.Group("/topics")
	topics.Get("/:id", controllers.GetTopicByID)
	topics.Patch("/:id", controllers.EditTopic)
	topics.Delete("/:id", controllers.DeleteTopic)

	//Staged questions awaiting review
	stage := api.Group("/process-questions")
	stage.Post("/", controllers.CreateStageQuestion)
	stage.Get("/", controllers.GetStageQuestions)
	stage.Get("/search", controllers.SearchStageQuestions)
	stage.Get("/by-question-number/:questionNumber", controllers.GetStageQuestionByNumber)
	stage.Get("/sources", controllers.GetStageUniqueSources)
	stage.Get("/subjects", controllers.GetStageUniqueSubjects)
	stage.Get("/chapters", controllers.GetStageUniqueChapters)
	stage.Get("/years", controllers.GetStageUniqueYears)
	stage.Post("/:id/move", controllers.MoveStageQuestion)
	stage.Get("/:id", controllers.GetStageQuestionByID)
	stage.Patch("/:id", controllers.EditStageQuestion)
	stage.Delete("/:id", controllers.DeleteStageQuestion)

	//Published questions
	questions := api.Group("/questions")
	questions.Post("/", controllers.CreateQuestion)
	questions.Get("/", controllers.GetQuestions)
	questions.Get("/search", controllers.SearchQuestions)
	questions.Get("/by-question-number/:questionNumber", controllers.GetQuestionByNumber)
	questions.Get("/sources", controllers.GetUniqueSources)
	questions.Get("/subjects", controllers.GetUniqueSubjects)
	questions.Get("/chapters", controllers.GetUniqueChapters)
	questions.Get("/years", controllers.GetUniqueYears)
	questions.Get("/:id", controllers.GetQuestionByID)
	questions.Patch("/:id", controllers.EditQuestion)
	questions.Delete("/:id", controllers.DeleteQuestion)

	//Mock tests and settings
	test := api.Group("/test")
	test.Post("/prepare", controllers.PrepareTest)
	test.Get("/questions/:subject", controllers.GetTestQuestionsBySubject)

	settings := test.Group("/settings")
	settings.Post("/", controllers.CreateTestSettings)
	settings.Get("/", controllers.GetTestSettings)
	settings.Get("/by-key/:key", controllers.GetTestSettingsByKey)
	settings.Get("/:id", controllers.GetTestSettingsByID)
	settings.Patch("/:id", controllers.EditTestSettings)
	settings.Delete("/:id", controllers.DeleteTestSettings)

	mockTests := test.Group("/mock-tests")
	mockTests.Post("/", controllers.CreateMockTest)
	mockTests.Get("/", controllers.GetMockTests)
	mockTests.Get("/user/:userID", controllers.GetMockTestsByUser)
	mockTests.Get("/:id", controllers.GetMockTestByID)
	mockTests.Patch("/:id", controllers.EditMockTest)
	mockTests.Delete("/:id", controllers.DeleteMockTest)
}

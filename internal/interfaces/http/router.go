package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/localesapp/locales-api/internal/application/auth"
	applocal "github.com/localesapp/locales-api/internal/application/local"
	"github.com/localesapp/locales-api/internal/application/verification"
	"github.com/localesapp/locales-api/internal/infrastructure/storage"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	VerificationUC *verification.VerificationUseCase
	LocalUC        *applocal.LocalUseCase
	Disk           *storage.Disk
}

// Router registra las rutas de la API. Las rutas conservan los paths que el
// frontend ya consume.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)
	app.Get("/googleverification", authHandler.GoogleVerification)
	app.Post("/generatePasswordResetLink", authHandler.GeneratePasswordResetLink)
	app.Post("/resetPassword", authHandler.ResetPassword)
	app.Get("/getUserInfo", authHandler.GetUserInfo)
	app.Post("/updateAvatar", authHandler.UpdateAvatar)

	verificationHandler := NewVerificationHandler(deps.VerificationUC)
	app.Post("/sendVerificationEmail", verificationHandler.SendVerificationEmail)
	app.Post("/validateCode", verificationHandler.ValidateCode)

	uploadHandler := NewUploadHandler(deps.Disk)
	app.Post("/uploadImage", uploadHandler.UploadImage)
	app.Post("/uploadLocalImage", uploadHandler.UploadLocalImage)
	app.Post("/uploadLocalPDF", uploadHandler.UploadLocalPDF)

	localHandler := NewLocalHandler(deps.LocalUC, deps.Disk)
	app.Post("/registrarLocal", localHandler.Registrar)
	app.Get("/api/local/info/:localId", localHandler.GetInfo)
	app.Get("/api/local/:userId", localHandler.ListByProveedor)
	app.Put("/actualizar_local/:localId", localHandler.Actualizar)
	app.Delete("/eliminarLocal/:localId", localHandler.Eliminar)
}

package main

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El middleware de swagger hace panic al arrancar si el archivo referenciado no
// existe; este test fija que el JSON generado viaja con el repo y cubre todas
// las rutas registradas.
func TestSwaggerJSON_ExisteYCubreLasRutas(t *testing.T) {
	raw, err := os.ReadFile("../../docs/swagger.json")
	require.NoError(t, err, "docs/swagger.json debe estar versionado junto al binario")

	var spec struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(raw, &spec))
	assert.Equal(t, "2.0", spec.Swagger)

	rutas := []string{
		"/register",
		"/login",
		"/googleverification",
		"/generatePasswordResetLink",
		"/resetPassword",
		"/getUserInfo",
		"/updateAvatar",
		"/sendVerificationEmail",
		"/validateCode",
		"/uploadImage",
		"/uploadLocalImage",
		"/uploadLocalPDF",
		"/registrarLocal",
		"/api/local/{userId}",
		"/api/local/info/{localId}",
		"/actualizar_local/{localId}",
		"/eliminarLocal/{localId}",
	}
	for _, ruta := range rutas {
		assert.Contains(t, spec.Paths, ruta, "ruta sin documentar: %s", ruta)
	}
}

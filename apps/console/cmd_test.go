package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schoolmed/console/core"
	"github.com/schoolmed/console/core/auth"
	restsvc "github.com/schoolmed/console/services/rest"
	sessionsvc "github.com/schoolmed/console/services/session"
)

func testToken(t *testing.T, subject, role string) string {
	t.Helper()
	claims := auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role: role,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

// fakeBackend is the echo stand-in for the real API, counting write calls so
// tests can prove a client-side guard short-circuited.
type fakeBackend struct {
	*echo.Echo
	writes int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	be := &fakeBackend{Echo: echo.New()}

	be.POST("/api/auth/login", func(c echo.Context) error {
		var creds auth.Credentials
		if err := c.Bind(&creds); err != nil {
			return err
		}
		if creds.Password != "s3cret" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "bad credentials"})
		}
		return c.JSON(http.StatusOK, echo.Map{"token": testToken(t, creds.Username, auth.RoleNurse)})
	})

	be.GET("/api/students", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"content": []echo.Map{
				{"studentId": "s1", "studentCode": "STU_001", "fullName": "Alice Smith",
					"className": "3A", "dateOfBirth": "2015-09-01", "isConfirm": true},
			},
			"totalElements": 1,
			"totalPages":    1,
			"number":        0,
		})
	})

	be.GET("/api/inventory", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []echo.Map{
			{"inventoryId": "inv-1", "totalQuantity": 3,
				"medicalItem": echo.Map{"medicalItemId": "mi-1", "name": "Paracetamol",
					"category": "MEDICATION", "unit": "tablet", "expiryDate": "2024-12-01"}},
		})
	})

	be.POST("/api/students", func(c echo.Context) error {
		be.writes++
		return c.JSON(http.StatusOK, echo.Map{"studentId": "s9"})
	})

	be.GET("/api/schedules/nurse/all", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []echo.Map{})
	})
	be.GET("/api/health-incidents", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []echo.Map{})
	})
	be.GET("/api/notifications", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []echo.Map{})
	})

	return be
}

func testApp(t *testing.T, be *fakeBackend) (*application, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	conf := &core.Config{}
	conf.API.BaseURL = srv.URL
	conf.API.Timeout = 5 * time.Second
	conf.API.PollInterval = time.Minute
	conf.Stock.LowThreshold = 10
	conf.Stock.ModerateThreshold = 50

	store := sessionsvc.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	client := restsvc.NewClient(conf, store, core.NopLogger{})

	out := new(bytes.Buffer)
	return newApplication(conf, core.NopLogger{}, store, client, out), out
}

func run(app *application, out *bytes.Buffer, args ...string) error {
	root := newRootCmd(app)
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	return root.Execute()
}

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func TestLoginFlow(t *testing.T) {
	app, out := testApp(t, newFakeBackend(t))
	mockPassword(t, "s3cret")

	require.NoError(t, run(app, out, "login", "nurse1"))
	assert.Contains(t, out.String(), "logged in as nurse1 (NURSE)")

	out.Reset()
	require.NoError(t, run(app, out, "whoami"))
	assert.Contains(t, out.String(), "subject=nurse1 role=NURSE")

	out.Reset()
	require.NoError(t, run(app, out, "logout"))
	assert.Contains(t, out.String(), "logged out")

	err := run(app, out, "whoami")
	assert.ErrorIs(t, err, auth.ErrNotLoggedIn)
}

func TestLoginRejected(t *testing.T) {
	app, out := testApp(t, newFakeBackend(t))
	mockPassword(t, "wrong")

	err := run(app, out, "login", "nurse1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "authentication failed")
}

func TestStudentsList(t *testing.T) {
	app, out := testApp(t, newFakeBackend(t))
	require.NoError(t, app.store.Save(auth.Session{Token: "tok", Role: auth.RoleNurse}))

	require.NoError(t, run(app, out, "students", "list"))
	assert.Contains(t, out.String(), "Alice Smith")
	assert.Contains(t, out.String(), "total: 1 (1 pages)")
}

func TestInventoryListShowsStockStatus(t *testing.T) {
	app, out := testApp(t, newFakeBackend(t))
	require.NoError(t, app.store.Save(auth.Session{Token: "tok", Role: auth.RoleNurse}))

	require.NoError(t, run(app, out, "inventory", "list"))
	assert.Contains(t, out.String(), "Paracetamol")
	assert.Contains(t, out.String(), "low")
}

func TestWriteGuardShortCircuits(t *testing.T) {
	be := newFakeBackend(t)
	app, out := testApp(t, be)
	require.NoError(t, app.store.Save(auth.Session{Token: "tok", Role: auth.RoleParent}))

	err := run(app, out, "students", "add",
		"--code", "STU_001", "--name", "Alice Smith", "--dob", "2015-09-01",
		"--gender", "FEMALE", "--class", "3A")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing was sent")
	assert.Zero(t, be.writes)
}

func TestListSurvivesDeadBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing listens anymore

	conf := &core.Config{}
	conf.API.BaseURL = srv.URL
	conf.API.Timeout = time.Second
	store := sessionsvc.NewFileStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, store.Save(auth.Session{Token: "tok", Role: auth.RoleNurse}))

	out := new(bytes.Buffer)
	client := restsvc.NewClient(conf, store, core.NopLogger{})
	app := newApplication(conf, core.NopLogger{}, store, client, out)

	require.NoError(t, run(app, out, "students", "list"))
	assert.Contains(t, out.String(), "total: 0 (0 pages)")
}

func TestDashboardOnce(t *testing.T) {
	app, out := testApp(t, newFakeBackend(t))
	require.NoError(t, app.store.Save(auth.Session{
		Token: "tok", Role: auth.RoleNurse, Subject: "nurse1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	require.NoError(t, run(app, out, "dashboard", "--once"))
	assert.Contains(t, out.String(), "schoolmed dashboard (nurse1, NURSE)")
	assert.Contains(t, out.String(), "[inventory]")
	assert.Contains(t, out.String(), "Paracetamol: 3 tablet left (low)")
}

//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stemsi/school-api/internal/model"
)

const (
	defaultBaseURL = "http://localhost:8000"
	defaultDBURL   = "mongodb://localhost:27017"
	defaultDBName  = "school_e2e"
)

var (
	baseURL string
	db      *mongo.Database
)

func TestMain(m *testing.M) {
	// Load .env if present (ignore error)
	_ = godotenv.Load("../../.env")

	baseURL = os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		dbURL = defaultDBURL
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dbURL))
	cancel()
	if err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		os.Exit(1)
	}
	db = client.Database(dbName)

	if err := cleanCollections(); err != nil {
		fmt.Printf("Setup failed: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = client.Disconnect(context.Background())
	os.Exit(code)
}

func cleanCollections() error {
	ctx := context.Background()
	for _, kind := range model.Kinds() {
		if _, err := db.Collection(kind.Collection()).DeleteMany(ctx, bson.M{}); err != nil {
			return fmt.Errorf("cleanup %s: %w", kind.Collection(), err)
		}
	}
	return nil
}

func TestE2EFlow(t *testing.T) {
	t.Run("Diagnostics", func(t *testing.T) {
		var body map[string]interface{}
		getJSON(t, "/test", &body)
		if body["connection_status"] != "Connected" {
			t.Fatalf("storage not connected: %v", body)
		}
	})

	t.Run("DepartmentLimit", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			postJSON(t, "/departments", map[string]string{"name": fmt.Sprintf("Dept %d", i)}, http.StatusOK)
		}
		var docs []map[string]interface{}
		getJSON(t, "/departments?limit=2", &docs)
		if len(docs) != 2 {
			t.Fatalf("expected 2 departments, got %d", len(docs))
		}
	})

	t.Run("UpcomingEvents", func(t *testing.T) {
		postJSON(t, "/events", map[string]string{
			"title": "Past",
			"date":  time.Now().Add(-72 * time.Hour).UTC().Format(time.RFC3339),
		}, http.StatusOK)
		postJSON(t, "/events", map[string]string{
			"title": "Future",
			"date":  time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
		}, http.StatusOK)

		var docs []map[string]interface{}
		getJSON(t, "/events?upcoming=true", &docs)
		if len(docs) != 1 || docs[0]["title"] != "Future" {
			t.Fatalf("expected only the future event, got %v", docs)
		}
	})

	t.Run("FacultyInvalidEmail", func(t *testing.T) {
		postJSON(t, "/faculty", map[string]string{"name": "Ana", "email": "not-an-email"}, http.StatusBadRequest)

		n, err := db.Collection(model.KindFaculty.Collection()).CountDocuments(context.Background(), bson.M{"name": "Ana"})
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if n != 0 {
			t.Fatalf("invalid faculty was stored")
		}
	})

	t.Run("Contact", func(t *testing.T) {
		body := postJSON(t, "/contact", map[string]string{
			"name":    "Ana",
			"email":   "ana@example.com",
			"subject": "Admissions",
			"message": "Hello",
		}, http.StatusOK)

		if body["message"] != "Received" {
			t.Fatalf("unexpected ack: %v", body)
		}
		oid, err := primitive.ObjectIDFromHex(body["inserted_id"])
		if err != nil {
			t.Fatalf("bad inserted_id: %v", err)
		}
		var stored bson.M
		err = db.Collection(model.KindContactMessage.Collection()).
			FindOne(context.Background(), bson.M{"_id": oid}).Decode(&stored)
		if err != nil {
			t.Fatalf("contact message not stored: %v", err)
		}
		if stored["subject"] != "Admissions" {
			t.Fatalf("unexpected stored message: %v", stored)
		}
	})
}

// ─── HTTP helpers ─────────────────────────────────────────────────────

func postJSON(t *testing.T, path string, payload interface{}, wantStatus int) map[string]string {
	t.Helper()
	data, _ := json.Marshal(payload)
	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw := readBody(resp)
	if resp.StatusCode != wantStatus {
		t.Fatalf("status %d: %s", resp.StatusCode, raw)
	}
	out := map[string]string{}
	if wantStatus == http.StatusOK {
		if err := json.Unmarshal([]byte(raw), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return out
}

func getJSON(t *testing.T, path string, dst interface{}) {
	t.Helper()
	resp, err := http.Get(baseURL + path)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw := readBody(resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status %d: %s", resp.StatusCode, raw)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		t.Fatalf("decode: %v", err)
	}
}

func readBody(resp *http.Response) string {
	b, _ := io.ReadAll(resp.Body)
	return string(b)
}

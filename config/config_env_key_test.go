package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":     "",
			"storageBucket": "",
		},
		"places": map[string]any{
			"radiusMeters": 3000,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"blob": map[string]any{
			"publicBaseUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_STORAGEBUCKET", want: "firebase.storageBucket"},
		{envKey: "PLACES_RADIUSMETERS", want: "places.radiusMeters"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "BLOB_PUBLICBASEURL", want: "blob.publicBaseUrl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestNormalizeToken_StripsSeparators(t *testing.T) {
	if got := normalizeToken("Storage-Bucket_1"); got != "storagebucket1" {
		t.Fatalf("normalizeToken() = %q", got)
	}
}

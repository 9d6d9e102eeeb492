package model

import (
	"testing"
	"time"
)

func TestJob_GetETAString(t *testing.T) {
	tests := []struct {
		etaSec   int
		expected string
	}{
		{-1, "—"},
		{0, "—"},
		{30, "00:30"},
		{90, "01:30"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{7323, "02:02:03"},
	}

	for _, test := range tests {
		job := &Job{ETASec: test.etaSec}
		result := job.GetETAString()
		if result != test.expected {
			t.Errorf("GetETAString() with ETASec=%d = %s, expected %s", test.etaSec, result, test.expected)
		}
	}
}

func TestJob_GetDisplayTitle(t *testing.T) {
	tests := []struct {
		title    string
		output   string
		url      string
		expected string
	}{
		{"Video Title", "", "https://youtube.com/watch?v=123", "Video Title"},
		{"", "", "https://youtube.com/watch?v=123", "https://youtube.com/watch?v=123"},
		{"", "/downloads/videos/Some Song.m4a", "https://music.youtube.com/watch?v=456", "Some Song"},
		{"Another Title", "/downloads/videos/file.mp4", "https://youtube.com/watch?v=456", "Another Title"},
	}

	for _, test := range tests {
		job := &Job{
			Title:      test.title,
			OutputPath: test.output,
			URL:        test.url,
		}
		result := job.GetDisplayTitle()
		if result != test.expected {
			t.Errorf("GetDisplayTitle() with title='%s', output='%s', url='%s' = '%s', expected '%s'",
				test.title, test.output, test.url, result, test.expected)
		}
	}
}

func TestJob_Creation(t *testing.T) {
	now := time.Now()
	job := &Job{
		ID:        "test-123",
		URL:       "https://youtube.com/watch?v=test",
		Kind:      KindVideoOrSingle,
		Status:    JobStatusPending,
		ETASec:    -1,
		StartedAt: now,
	}

	if job.ID != "test-123" {
		t.Errorf("Expected ID to be 'test-123', got '%s'", job.ID)
	}

	if job.Kind != KindVideoOrSingle {
		t.Errorf("Expected kind to be KindVideoOrSingle, got %s", job.Kind)
	}

	if job.Status != JobStatusPending {
		t.Errorf("Expected status to be JobStatusPending, got %s", job.Status)
	}

	if !job.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, job.StartedAt)
	}
}

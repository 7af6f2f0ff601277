package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/withbatteries/create-batteries/internal/templates"
)

func TestFormatTargetDir(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "my-app"},
		{"  my-app  ", "my-app"},
		{"my-app///", "my-app"},
		{" nested/dir/ ", "nested/dir"},
		{".", "."},
		{"   ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTargetDir(tt.in))
		})
	}
}

func TestProjectName(t *testing.T) {
	assert.Equal(t, "work", ProjectName("/home/work", "."))
	assert.Equal(t, "my-app", ProjectName("/home/work", "my-app"))
	assert.Equal(t, "a/b", ProjectName("/home/work", "a/b"))
}

func TestResolveRoot(t *testing.T) {
	assert.Equal(t, "/home/work/app", ResolveRoot("/home/work", "app"))
	assert.Equal(t, "/home/work", ResolveRoot("/home/work", "."))
	assert.Equal(t, "/srv/app", ResolveRoot("/home/work", "/srv/app/"))
}

func TestAnswersTemplateID(t *testing.T) {
	react, _ := templates.FrameworkByID("react")

	tests := []struct {
		name    string
		answers Answers
		hint    string
		want    string
	}{
		{"variant wins", Answers{Framework: &react, Variant: "react-js"}, "next-ts", "react-js"},
		{"valid hint", Answers{}, "next-ts", "next-ts"},
		{"invalid hint falls to framework", Answers{Framework: &react}, "vue", "react"},
		{"nothing resolved", Answers{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.answers.TemplateID(tt.hint))
		})
	}
}

func TestResolve_Invalid(t *testing.T) {
	_, err := Resolve(Answers{}, "")
	assert.Error(t, err)
}

func TestOverwriteString(t *testing.T) {
	assert.Equal(t, "n/a", OverwriteNotApplicable.String())
	assert.Equal(t, "confirmed", OverwriteConfirmed.String())
	assert.Equal(t, "declined", OverwriteDeclined.String())
}

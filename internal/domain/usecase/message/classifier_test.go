package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(nil)

	testCases := []struct {
		name     string
		text     string
		expected int
	}{
		{"Single greeting", "hello", 1},
		{"Case insensitive", "HeLLo", 1},
		{"Repeated substring", "hihihi", 3},
		{"Two Ukrainian greetings", "привіт привіт", 2},
		{"Cyrillic upper case", "ПРИВІТ", 1},
		{"Russian greeting", "Привет, как дела?", 1},
		{"Hey is not hi", "hey", 1},
		{"Substring inside word", "this", 1},
		{"Mixed tokens", "Hello! hi there, привіт", 3},
		{"No greeting", "good morning", 0},
		{"Empty text", "", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, classifier.Classify(tc.text))
		})
	}
}

func TestClassifier_CustomGreetings(t *testing.T) {
	classifier := NewClassifier([]string{" Bonjour ", "bonjour", "", "salut"})

	assert.Equal(t, 1, classifier.Classify("BONJOUR"))
	assert.Equal(t, 2, classifier.Classify("salut salut"))
	assert.Equal(t, 0, classifier.Classify("hello"))
}

package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticFetcher struct {
	body string
}

func (f staticFetcher) Fetch(context.Context) ([]byte, error) { return []byte(f.body), nil }
func (f staticFetcher) Location() string                      { return "static" }

func TestQuestionSource_FetchQuestions(t *testing.T) {
	src := NewQuestionSource(staticFetcher{body: `[
		{"question":"Rajzolj egy jelet! (3 pont)","answer":"Lásd a képet.","image":"x.png","bad_answers":["a.png","b.png"]},
		{"question":"Mi ez?","answer":"kutya"}
	]`})

	questions, err := src.FetchQuestions(context.Background())
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, "x.png", questions[0].Image)
	assert.Equal(t, []string{"a.png", "b.png"}, questions[0].BadAnswers)
	assert.Empty(t, questions[1].BadAnswers)
	assert.False(t, questions[1].HasImage())
}

func TestQuestionSource_MalformedJSON(t *testing.T) {
	_, err := NewQuestionSource(staticFetcher{body: `{"question":`}).FetchQuestions(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode questions")
}

func TestOrganizationSource_FetchOrganization(t *testing.T) {
	src := NewOrganizationSource(staticFetcher{body: `{
		"company":{"name":"Csomópont Egyesület","description":"d","vision":"v"},
		"members":[{"name":"Kiss Anna","role":"elnök","image":"anna.jpg"}],
		"events":[{"name":"Tábor","date":"2024-03-15","location":"Balaton","description":"x"}],
		"gallery":["g1.jpg"]
	}`})

	org, err := src.FetchOrganization(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Csomópont Egyesület", org.Company.Name)
	require.Len(t, org.Members, 1)
	require.Len(t, org.Events, 1)
	assert.Equal(t, "2024-03-15", org.Events[0].Date)
	assert.Equal(t, []string{"g1.jpg"}, org.Gallery)
}

// Package quiz implements the quiz engine: question pool selection, point
// values parsed from question text, answer option generation for text and
// image questions, scoring and the final report.
//
// An Engine owns exactly one Session at a time. Start replaces the session
// wholesale; SubmitAnswer is the only mutation of a running session.
package quiz

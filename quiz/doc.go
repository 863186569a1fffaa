// Package quiz models a quiz that preloads a large question set once and walks
// a user through it one question at a time.
package quiz

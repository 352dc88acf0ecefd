// Package mocks provides mock implementations for testing the student directory ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the
// repository and key-value store interfaces. The mocks are generated using
// go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockStudentRepository(ctrl)
//	mockRepo.EXPECT().GetByID(gomock.Any(), "u1").Return(profile, nil)
package mocks

// Generate mock for StudentRepository interface from internal/ports package.
// This creates MockStudentRepository with methods for all StudentRepository interface methods:
// Put, GetByID, ListOrderedByName
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=student_repository_mock.go github.com/campusapps/studentdir/internal/ports StudentRepository

// Generate mock for KeyValueStore interface from internal/ports package.
// This creates MockKeyValueStore with methods for all KeyValueStore interface methods:
// Set, Get, DeleteMany
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=kv_store_mock.go github.com/campusapps/studentdir/internal/ports KeyValueStore

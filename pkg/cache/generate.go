package cache

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_store.go strmsync/pkg/cache Store

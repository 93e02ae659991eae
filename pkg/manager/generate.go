package manager

//go:generate go run go.uber.org/mock/mockgen -package mocks -destination mocks/mock_resolver.go strmsync/pkg/manager MetadataResolver

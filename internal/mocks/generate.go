package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Source --dir ../domain/source --output domain/source --outpkg sourcemock --filename source_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Sink --dir ../domain/sink --output domain/sink --outpkg sinkmock --filename sink_mock.go

//go:generate mockgen -source=../catalog.go -destination=./mock_catalog.go -package=mocks
//go:generate mockgen -source=../cache.go   -destination=./mock_cache.go   -package=mocks
//go:generate mockgen -source=../kvstore.go -destination=./mock_kvstore.go -package=mocks
//go:generate mockgen -source=../payment.go -destination=./mock_payment.go -package=mocks
//go:generate mockgen -source=../auth.go    -destination=./mock_auth.go    -package=mocks
//go:generate mockgen -source=../logger.go  -destination=./mock_logger.go  -package=mocks

package mocks

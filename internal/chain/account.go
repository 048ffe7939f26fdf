package chain

import (
	"fmt"
	"strings"

	"receiptchain/internal/models"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// NewAccount generates a fresh secp256k1 key pair.
func NewAccount() (*models.Account, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return &models.Account{
		Address:    crypto.PubkeyToAddress(key.PublicKey).Hex(),
		PrivateKey: hexutil.Encode(crypto.FromECDSA(key)),
		PublicKey:  hexutil.Encode(crypto.FromECDSAPub(&key.PublicKey)),
	}, nil
}

// OperatorAddress derives the address for a hex private key. An empty key
// yields the zero address.
func OperatorAddress(privateKey string) (common.Address, error) {
	if privateKey == "" {
		return common.Address{}, nil
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("invalid operator key: %w", err)
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}

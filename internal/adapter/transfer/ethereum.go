package transfer

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"crowdfund-ledger/internal/config/configs"
	"crowdfund-ledger/internal/core/domain"
	"crowdfund-ledger/internal/core/port"
)

// Backend is the part of an Ethereum node client the sender uses.
// *ethclient.Client satisfies it.
type Backend interface {
	bind.DeployBackend
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
}

// EthereumSender pays custody out as native value transfers signed with
// the ledger account key, and verifies that contributions were paid into
// that account before they are credited.
type EthereumSender struct {
	backend   Backend
	key       *ecdsa.PrivateKey
	from      common.Address
	chainID   *big.Int
	gasLimit  uint64
	waitMined bool
	timeout   time.Duration
	closeFn   func()

	// nonces are taken from the node; sends are serialised so two payouts
	// never reuse one.
	mu sync.Mutex
}

// DialEthereum connects to cfg.RPCURL and loads the signing key.
func DialEthereum(ctx context.Context, cfg configs.Ethereum) (*EthereumSender, error) {
	client, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to ethereum client: %w", err)
	}
	sender, err := NewEthereumSender(client, cfg)
	if err != nil {
		client.Close()
		return nil, err
	}
	sender.closeFn = client.Close
	return sender, nil
}

// NewEthereumSender builds a sender on an existing backend.
func NewEthereumSender(backend Backend, cfg configs.Ethereum) (*EthereumSender, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	gasLimit := cfg.GasLimit
	if gasLimit == 0 {
		gasLimit = 21000
	}
	return &EthereumSender{
		backend:   backend,
		key:       key,
		from:      crypto.PubkeyToAddress(key.PublicKey),
		chainID:   big.NewInt(cfg.ChainID),
		gasLimit:  gasLimit,
		waitMined: cfg.WaitMined,
		timeout:   cfg.Timeout,
	}, nil
}

var (
	_ port.Transferer      = (*EthereumSender)(nil)
	_ port.DepositVerifier = (*EthereumSender)(nil)
)

// Address returns the account payouts are sent from.
func (s *EthereumSender) Address() common.Address {
	return s.from
}

// Transfer sends amount wei to `to`. With WaitMined it returns only after
// the transaction is mined and fails when it reverted.
func (s *EthereumSender) Transfer(ctx context.Context, to common.Address, amount domain.Amount) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.mu.Lock()
	tx, err := s.send(ctx, to, amount)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if !s.waitMined {
		return nil
	}

	receipt, err := bind.WaitMined(ctx, s.backend, tx)
	if err != nil {
		return fmt.Errorf("wait for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return nil
}

func (s *EthereumSender) send(ctx context.Context, to common.Address, amount domain.Amount) (*types.Transaction, error) {
	nonce, err := s.backend.PendingNonceAt(ctx, s.from)
	if err != nil {
		return nil, fmt.Errorf("pending nonce: %w", err)
	}
	gasPrice, err := s.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    amount.ToBig(),
		Gas:      s.gasLimit,
		GasPrice: gasPrice,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return nil, fmt.Errorf("sign transaction: %w", err)
	}
	if err = s.backend.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send transaction: %w", err)
	}
	return signed, nil
}

// VerifyDeposit checks that ref is the hash of a mined, successful value
// transfer of exactly amount wei from `from` to the ledger account.
func (s *EthereumSender) VerifyDeposit(ctx context.Context, from common.Address, amount domain.Amount, ref string) error {
	raw, err := hexutil.Decode(ref)
	if err != nil || len(raw) != common.HashLength {
		return fmt.Errorf("%w: malformed transaction hash %q", domain.ErrInvalidDeposit, ref)
	}
	hash := common.BytesToHash(raw)

	tx, pending, err := s.backend.TransactionByHash(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return fmt.Errorf("%w: transaction %s not found", domain.ErrInvalidDeposit, hash.Hex())
	}
	if err != nil {
		return fmt.Errorf("fetch transaction %s: %w", hash.Hex(), err)
	}
	if pending {
		return fmt.Errorf("%w: transaction %s is pending", domain.ErrInvalidDeposit, hash.Hex())
	}
	if tx.To() == nil || *tx.To() != s.from {
		return fmt.Errorf("%w: transaction %s is not sent to the ledger", domain.ErrInvalidDeposit, hash.Hex())
	}
	if tx.Value().Cmp(amount.ToBig()) != 0 {
		return fmt.Errorf("%w: transaction %s carries %s wei, not %s", domain.ErrInvalidDeposit, hash.Hex(), tx.Value(), amount.Dec())
	}
	sender, err := types.Sender(types.LatestSignerForChainID(s.chainID), tx)
	if err != nil {
		return fmt.Errorf("%w: transaction %s sender: %v", domain.ErrInvalidDeposit, hash.Hex(), err)
	}
	if sender != from {
		return fmt.Errorf("%w: transaction %s was sent by %s", domain.ErrInvalidDeposit, hash.Hex(), sender.Hex())
	}

	receipt, err := s.backend.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return fmt.Errorf("%w: transaction %s has no receipt", domain.ErrInvalidDeposit, hash.Hex())
	}
	if err != nil {
		return fmt.Errorf("fetch receipt %s: %w", hash.Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("%w: transaction %s reverted", domain.ErrInvalidDeposit, hash.Hex())
	}
	return nil
}

// Close releases the node connection when the sender dialed it.
func (s *EthereumSender) Close() {
	if s.closeFn != nil {
		s.closeFn()
	}
}

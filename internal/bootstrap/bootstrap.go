package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	allowanceinadapter "tokenhub/internal/modules/allowance/adapter/in"
	allowanceoutadapter "tokenhub/internal/modules/allowance/adapter/out"
	allowanceservice "tokenhub/internal/modules/allowance/service"
	allowanceusecase "tokenhub/internal/modules/allowance/usecase"
	familyinadapter "tokenhub/internal/modules/family/adapter/in"
	familyoutadapter "tokenhub/internal/modules/family/adapter/out"
	familyservice "tokenhub/internal/modules/family/service"
	familyusecase "tokenhub/internal/modules/family/usecase"
	ledgerinadapter "tokenhub/internal/modules/ledger/adapter/in"
	ledgeroutadapter "tokenhub/internal/modules/ledger/adapter/out"
	ledgerout "tokenhub/internal/modules/ledger/port/out"
	ledgerservice "tokenhub/internal/modules/ledger/service"
	ledgerusecase "tokenhub/internal/modules/ledger/usecase"
	mirrorinadapter "tokenhub/internal/modules/mirror/adapter/in"
	mirroroutadapter "tokenhub/internal/modules/mirror/adapter/out"
	mirrorout "tokenhub/internal/modules/mirror/port/out"
	mirrorservice "tokenhub/internal/modules/mirror/service"
	mirrorusecase "tokenhub/internal/modules/mirror/usecase"
	scaninadapter "tokenhub/internal/modules/scan/adapter/in"
	scanservice "tokenhub/internal/modules/scan/service"
	scanusecase "tokenhub/internal/modules/scan/usecase"
	"tokenhub/internal/platform/clock"
	"tokenhub/internal/platform/config"
	"tokenhub/internal/platform/id"
	"tokenhub/internal/platform/logging"
	uiapp "tokenhub/internal/ui/app"
)

type App struct {
	ScanCLI      scaninadapter.CLIHandler
	LedgerCLI    ledgerinadapter.CLIHandler
	AllowanceCLI allowanceinadapter.CLIHandler
	FamilyCLI    familyinadapter.CLIHandler
	MirrorCLI    mirrorinadapter.CLIHandler

	pool *mirroroutadapter.WorkerPool
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	familyStore := familyoutadapter.NewFileSpaceStore(filepath.Join(cfg.DataPath, ".tokenhub", "family.json"))
	familyUC := familyusecase.NewInteractor(familyservice.NewFamilyService(clk, familyStore))

	// The joined space may pin its own hub address; it wins over config.
	hubAddr := cfg.HubAddr
	if space, err := familyStore.Load(context.Background()); err == nil && space.HubAddr != "" {
		hubAddr = space.HubAddr
	}

	mirrorLog := logging.New("mirror")
	pool := mirroroutadapter.NewWorkerPool(cfg.MirrorWorkers, cfg.MirrorQueue, mirrorLog)
	var remote mirrorout.RemoteStore
	if hubAddr != "" {
		remote = mirroroutadapter.NewJSONRPCRemoteStore(hubAddr)
	}
	hubStore, err := mirroroutadapter.NewSQLiteHubStore(cfg.HubDBPath)
	if err != nil {
		return nil, fmt.Errorf("new hub store: %w", err)
	}
	mirrorUC := mirrorusecase.NewInteractor(mirrorservice.NewMirrorService(
		remote,
		pool,
		mirroroutadapter.NewJSONRPCHubServer(),
		hubStore,
		mirrorLog,
	))

	var ledgerStore ledgerout.Store
	if cfg.StoreBackend == config.StoreFile {
		ledgerStore = ledgeroutadapter.NewFileStore(cfg.LedgerFilePath)
	} else {
		ledgerStore, err = ledgeroutadapter.NewSQLiteStore(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("new ledger store: %w", err)
		}
	}
	ledgerUC := ledgerusecase.NewInteractor(ledgerservice.NewLedgerService(clk, ids, ledgerStore), mirrorUC)

	healthStore := allowanceoutadapter.NewFileHealthStore(filepath.Join(cfg.DataPath, ".tokenhub"))
	allowanceUC := allowanceusecase.NewInteractor(allowanceservice.NewAllowanceService(clk, healthStore), ledgerUC)

	scanUC := scanusecase.NewInteractor(scanservice.NewScanService(), ledgerUC, mirrorUC)

	return &App{
		ScanCLI:      scaninadapter.NewCLIHandler(scanUC, allowanceUC),
		LedgerCLI:    ledgerinadapter.NewCLIHandler(ledgerUC),
		AllowanceCLI: allowanceinadapter.NewCLIHandler(allowanceUC),
		FamilyCLI:    familyinadapter.NewCLIHandler(familyUC),
		MirrorCLI:    mirrorinadapter.NewCLIHandler(mirrorUC),
		pool:         pool,
	}, nil
}

// Close drains queued mirror submissions before the process exits.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
}

func RunTUI(userID string, app *App) error {
	model := uiapp.NewModel(userID, app.AllowanceCLI, app.LedgerCLI, app.FamilyCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

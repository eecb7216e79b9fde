// Package render — генерация PDF через headless-браузер (Chromium/DevTools).
//
// Движок держит одно подключение к браузеру на процесс; на каждый документ
// открывается отдельная страница и закрывается после печати.
package render

import (
	"io"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"ladle_passport/internal/common"
	"ladle_passport/internal/logger"
)

// Параметры страницы A4 с полями 20 мм (в дюймах, как требует DevTools).
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.7874
)

// Config — настройки движка рендеринга.
type Config struct {
	// BrowserBin — путь к бинарю браузера; пусто — launcher найдёт сам.
	BrowserBin string
	// DebugURL — адрес уже запущенного браузера; если задан, новый не запускается.
	DebugURL string
}

// Engine — движок генерации PDF.
type Engine struct {
	cfg Config

	mu      sync.Mutex
	browser *rod.Browser
}

// NewEngine создаёт движок. Браузер запускается лениво при первом документе.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// ensureBrowser подключается к браузеру, если подключения ещё нет.
func (e *Engine) ensureBrowser() (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		return e.browser, nil
	}

	controlURL := e.cfg.DebugURL
	if controlURL == "" {
		l := launcher.New().Headless(true)
		if e.cfg.BrowserBin != "" {
			l = l.Bin(e.cfg.BrowserBin)
		}
		u, err := l.Launch()
		if err != nil {
			return nil, common.NewError(
				common.ErrCodeRender,
				"Не удалось запустить браузер для генерации PDF",
				common.StatusInternalServerError,
				err.Error(),
			)
		}
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, common.NewError(
			common.ErrCodeRender,
			"Не удалось подключиться к браузеру для генерации PDF",
			common.StatusInternalServerError,
			err.Error(),
		)
	}

	logger.GetAppLogger().Info("Браузер для генерации PDF подключён")
	e.browser = browser
	return browser, nil
}

// PDF печатает HTML-документ в PDF (A4, поля 20 мм).
// Начатая печать доводится до конца независимо от отмены запроса.
func (e *Engine) PDF(html string) ([]byte, error) {
	browser, err := e.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, renderError("Не удалось открыть страницу браузера", err)
	}
	defer func() {
		if closeErr := page.Close(); closeErr != nil {
			logger.GetAppLogger().WithError(closeErr).Warn("Не удалось закрыть страницу браузера")
		}
	}()

	if err := page.SetDocumentContent(html); err != nil {
		return nil, renderError("Не удалось загрузить документ в браузер", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, renderError("Документ не загрузился в браузере", err)
	}

	f := func(v float64) *float64 { return &v }
	reader, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      f(paperWidthInches),
		PaperHeight:     f(paperHeightInches),
		MarginTop:       f(marginInches),
		MarginBottom:    f(marginInches),
		MarginLeft:      f(marginInches),
		MarginRight:     f(marginInches),
	})
	if err != nil {
		return nil, renderError("Печать документа в PDF не удалась", err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, renderError("Не удалось прочитать PDF-документ", err)
	}

	return data, nil
}

// Close разрывает подключение к браузеру.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser == nil {
		return nil
	}
	err := e.browser.Close()
	e.browser = nil
	return err
}

func renderError(message string, err error) error {
	return common.NewError(
		common.ErrCodeRender,
		message,
		common.StatusInternalServerError,
		err.Error(),
	)
}

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default возвращает общий движок процесса, создавая его при первом вызове.
func Default(cfg Config) *Engine {
	defaultOnce.Do(func() {
		defaultEngine = NewEngine(cfg)
	})
	return defaultEngine
}

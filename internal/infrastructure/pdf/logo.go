package pdf

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
)

// maxLogoBytes límite de lectura del logo remoto (2 MB).
const maxLogoBytes = 2 << 20

// BuscadorLogo obtiene la imagen del logo de la empresa. Es el único paso
// remoto de la generación de documentos; el generador espera su resultado
// antes de cerrar el encabezado y traga cualquier fallo (el documento sale
// igual, sin logo).
type BuscadorLogo interface {
	Obtener(ctx context.Context, url string) ([]byte, error)
}

// HTTPBuscadorLogo descarga el logo vía HTTP. Un solo intento, sin reintentos:
// la generación de documentos no es un componente de I/O pesado.
type HTTPBuscadorLogo struct {
	client *http.Client
}

// NewHTTPBuscadorLogo construye el fetcher con timeout propio.
func NewHTTPBuscadorLogo(timeout time.Duration) *HTTPBuscadorLogo {
	return &HTTPBuscadorLogo{client: &http.Client{Timeout: timeout}}
}

// Obtener descarga la imagen. Cualquier error (red, status, lectura) se
// reporta al caller, que decide si es fatal; para documentos nunca lo es.
func (f *HTTPBuscadorLogo) Obtener(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("logo: armar request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("logo: descargar: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo: status %d", resp.StatusCode)
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return nil, fmt.Errorf("logo: leer cuerpo: %w", err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("logo: respuesta vacía")
	}
	return b, nil
}

// validarLogo verifica que los bytes descargados sean una imagen PNG o JPEG
// decodificable. Un CDN puede responder 200 con una página de error HTML; si
// esos bytes llegan a Maroto, el documento completo aborta en Generate.
func validarLogo(b []byte) error {
	if _, _, err := image.DecodeConfig(bytes.NewReader(b)); err != nil {
		return fmt.Errorf("logo: imagen no decodificable: %w", err)
	}
	return nil
}

// extensionLogo detecta el formato de la imagen por su contenido.
// Maroto necesita la extensión explícita al incrustar bytes.
func extensionLogo(b []byte) extension.Type {
	switch http.DetectContentType(b) {
	case "image/jpeg":
		return extension.Jpg
	case "image/png":
		return extension.Png
	default:
		return extension.Png
	}
}

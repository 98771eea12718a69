// Package assets loads the typography and branding files a rendered
// document may use.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── FilesystemLoader  - loads from a directory on disk
//	    ├── MemoryLoader      - serves bytes held in memory
//	    └── Chain             - tries loaders in order, first found wins
//
// Every asset is optional. Callers treat ErrFontNotFound and
// ErrImageNotFound as "use the fallback", not as failures.
//
// # Directory Structure
//
//	{basePath}/
//	├── fonts/
//	│   └── {name}.ttf          # TrueType fonts (e.g., Inter-Regular.ttf)
//	└── img/
//	    └── {name}.png|jpg|jpeg|gif|webp
//
// WebP images are decoded and re-encoded as PNG, since the PDF writer only
// embeds PNG, JPEG and GIF.
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets

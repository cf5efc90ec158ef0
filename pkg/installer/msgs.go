package installer

// Console messages. Status lines are user facing and stay in Spanish.
const (
	MsgStart          = "🚀 Instalando %s..."
	MsgFileNotFound   = "❌ Error: No se encontró %s"
	MsgWindowsFound   = "🪟 Sistema Windows detectado"
	MsgUnixFound      = "🐧 Sistema %s detectado"
	MsgSuccess        = "✅ %s instalado correctamente!"
	MsgUsageHeader    = "🎉 Ahora puedes usar:"
	MsgUsageSetup     = "   %s setup      # Configuración inicial"
	MsgUsageInteract  = "   %s -i         # Modo interactivo"
	MsgUsageQuery     = "   %s \"pregunta\" # Consulta directa"
	MsgInstallFailed  = "❌ Error durante la instalación: %s"
	MsgManualHeader   = "💡 Puedes intentar la instalación manual:"
	MsgManualClone    = "   git clone %s"
	MsgManualCd       = "   cd %s"
	MsgManualWindows  = "   # Usar Git Bash o WSL para ejecutar %s"
	MsgManualUnix     = "   ./%s"
	MsgWindowsAdvice  = "⚠️  En Windows, recomendamos usar:"
	MsgAdviceGitBash  = "   - Git Bash (incluido con Git for Windows)"
	MsgAdviceWSL      = "   - WSL (Windows Subsystem for Linux)"
	MsgAdvicePwsh     = "   - PowerShell con bash disponible"
	MsgCreatingShim   = "📝 Creando script wrapper para Windows..."
	MsgShimCreated    = "✅ Script wrapper creado: %s"
	MsgDryRunMkdir    = "🔍 Se crearía el directorio %s"
	MsgDryRunChmod    = "🔍 Se harían ejecutables %s y %s"
	MsgDryRunSetup    = "🔍 Se ejecutaría %s en %s"
	MsgDryRunShim     = "🔍 Se escribiría %s"
	MsgDryRunComplete = "🔍 Simulación completada: no se realizaron cambios"
)

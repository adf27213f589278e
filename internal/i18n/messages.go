package i18n

// Key identifies a message.
type Key int

const (
	KeySSIDRequired Key = iota
	KeySSIDTooLong
	KeyPasswordRequired
	KeyPasswordTooShort
	KeyInvalidSecurityType
	KeyEncodingFailed
	KeyExportFailed
	KeyValidationFailed
	KeyInternal

	KeySecurityWPA
	KeySecurityWEP
	KeySecurityOpen

	KeyNetwork
	KeySecurity
	KeyPassword
	KeyHiddenNetwork
	KeyYes
	KeySavedAs
	KeyValid
	KeyScanHint

	numKeys
)

var tables = [numLocales][numKeys]string{
	English: {
		KeySSIDRequired:        "Network name (SSID) is required",
		KeySSIDTooLong:         "Network name cannot exceed 32 characters",
		KeyPasswordRequired:    "Password is required",
		KeyPasswordTooShort:    "Password must be at least 8 characters long",
		KeyInvalidSecurityType: "Security type must be WPA, WEP or nopass",
		KeyEncodingFailed:      "Could not generate the QR code. Please try again.",
		KeyExportFailed:        "Error saving the file. Please try again.",
		KeyValidationFailed:    "The network details are not valid",
		KeyInternal:            "Internal error",

		KeySecurityWPA:  "WPA/WPA2",
		KeySecurityWEP:  "WEP",
		KeySecurityOpen: "No password",

		KeyNetwork:       "Network (SSID):",
		KeySecurity:      "Security:",
		KeyPassword:      "Password:",
		KeyHiddenNetwork: "Hidden network:",
		KeyYes:           "Yes",
		KeySavedAs:       "Saved as",
		KeyValid:         "Network details are valid",
		KeyScanHint:      "Point your phone camera at the code to join the network.",
	},
	Spanish: {
		KeySSIDRequired:        "El nombre de la red es obligatorio",
		KeySSIDTooLong:         "El nombre no puede exceder 32 caracteres",
		KeyPasswordRequired:    "La contraseña es obligatoria",
		KeyPasswordTooShort:    "La contraseña debe tener al menos 8 caracteres",
		KeyInvalidSecurityType: "El tipo de seguridad debe ser WPA, WEP o nopass",
		KeyEncodingFailed:      "No se pudo generar el código QR. Por favor, inténtalo de nuevo.",
		KeyExportFailed:        "Error al guardar el archivo. Inténtalo de nuevo.",
		KeyValidationFailed:    "Los datos de la red no son válidos",
		KeyInternal:            "Error interno",

		KeySecurityWPA:  "WPA/WPA2",
		KeySecurityWEP:  "WEP",
		KeySecurityOpen: "Sin contraseña",

		KeyNetwork:       "Red (SSID):",
		KeySecurity:      "Seguridad:",
		KeyPassword:      "Contraseña:",
		KeyHiddenNetwork: "Red oculta:",
		KeyYes:           "Sí",
		KeySavedAs:       "Guardado como",
		KeyValid:         "Los datos de la red son válidos",
		KeyScanHint:      "Apunta la cámara de tu teléfono al código para conectarte.",
	},
}

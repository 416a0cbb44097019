package nas

// 5GMM message types, TS 24.501 table 9.7.1.
const (
	MsgRegistrationRequest         = 0x41
	MsgRegistrationAccept          = 0x42
	MsgRegistrationComplete        = 0x43
	MsgRegistrationReject          = 0x44
	MsgDeregistrationRequestUE     = 0x45
	MsgDeregistrationAcceptUE      = 0x46
	MsgDeregistrationRequestNW     = 0x47
	MsgDeregistrationAcceptNW      = 0x48
	MsgServiceRequest              = 0x4c
	MsgServiceReject               = 0x4d
	MsgServiceAccept               = 0x4e
	MsgControlPlaneServiceRequest  = 0x4f
	MsgSliceAuthenticationCommand  = 0x50
	MsgSliceAuthenticationComplete = 0x51
	MsgSliceAuthenticationResult   = 0x52
	MsgConfigurationUpdateCommand  = 0x54
	MsgConfigurationUpdateComplete = 0x55
	MsgAuthenticationRequest       = 0x56
	MsgAuthenticationResponse      = 0x57
	MsgAuthenticationReject        = 0x58
	MsgAuthenticationFailure       = 0x59
	MsgAuthenticationResult        = 0x5a
	MsgIdentityRequest             = 0x5b
	MsgIdentityResponse            = 0x5c
	MsgSecurityModeCommand         = 0x5d
	MsgSecurityModeComplete        = 0x5e
	MsgSecurityModeReject          = 0x5f
	MsgMMStatus                    = 0x64
	MsgNotification                = 0x65
	MsgNotificationResponse        = 0x66
	MsgULNasTransport              = 0x67
	MsgDLNasTransport              = 0x68
)

var mmMessages = map[byte]*msgDescriptor{
	MsgRegistrationRequest: {
		msgType: MsgRegistrationRequest, name: "Registration request",
		slots: []ieSlot{
			mand(elemRegistrationType, FormatV),
			mand(elemNgKsi, FormatV),
			mand(elemMobileIdentity, FormatLVE),
			optNamed("Non-current native NAS key set identifier", 0x0c, elemNgKsi, FormatTV),
			opt(0x10, elemMMCapability, FormatTLV),
			opt(0x2e, elemUeSecurityCapability, FormatTLV),
			optNamed("Requested NSSAI", 0x2f, elemNssai, FormatTLV),
			optNamed("Last visited registered TAI", 0x52, elemLastVisitedTai, FormatTV),
			opt(0x17, elemS1UeNetworkCapability, FormatTLV),
			optNamed("Uplink data status", 0x40, elemPsiBitmap, FormatTLV),
			optNamed("PDU session status", 0x50, elemPsiBitmap, FormatTLV),
			opt(0x0b, elemMicoIndication, FormatTV),
			opt(0x2b, elemUeStatus, FormatTLV),
			optNamed("Additional GUTI", 0x77, elemMobileIdentity, FormatTLVE),
			optNamed("Allowed PDU session status", 0x25, elemPsiBitmap, FormatTLV),
			opt(0x18, elemUeUsageSetting, FormatTLV),
			optNamed("Requested DRX parameters", 0x51, elemDrxParameters, FormatTLV),
			opt(0x70, elemEpsNasMessageContainer, FormatTLVE),
			optNamed("LADN indication", 0x74, elemAdditionalInformation, FormatTLVE),
			opt(0x08, elemPayloadContainerType, FormatTV),
			opt(0x7b, elemPayloadContainer, FormatTLVE),
			opt(0x09, elemNetworkSlicingIndication, FormatTV),
			opt(0x53, elemUpdateType5gs, FormatTLV),
			opt(0x41, elemMobileStationClassmark2, FormatTLV),
			opt(0x42, elemSupportedCodecs, FormatTLV),
			opt(0x71, elemNasMessageContainer, FormatTLVE),
			opt(0x60, elemEpsBearerContextStatus, FormatTLV),
			optNamed("Requested extended DRX parameters", 0x6e, elemExtendedDrxParameters, FormatTLV),
			optNamed("T3324 value", 0x6a, elemGprsTimer3, FormatTLV),
		},
	},
	MsgRegistrationAccept: {
		msgType: MsgRegistrationAccept, name: "Registration accept",
		slots: []ieSlot{
			mand(elemRegistrationResult, FormatLV),
			optNamed("5G-GUTI", 0x77, elemMobileIdentity, FormatTLVE),
			optNamed("Equivalent PLMNs", 0x4a, elemPlmnList, FormatTLV),
			opt(0x54, elemTaiList, FormatTLV),
			optNamed("Allowed NSSAI", 0x15, elemNssai, FormatTLV),
			opt(0x11, elemRejectedNssai, FormatTLV),
			optNamed("Configured NSSAI", 0x31, elemNssai, FormatTLV),
			opt(0x21, elemMMNetworkFeatureSupport, FormatTLV),
			optNamed("PDU session status", 0x50, elemPsiBitmap, FormatTLV),
			optNamed("PDU session reactivation result", 0x26, elemPsiBitmap, FormatTLV),
			optNamed("PDU session reactivation result error cause", 0x72, elemAdditionalInformation, FormatTLVE),
			opt(0x79, elemLadnInformation, FormatTLVE),
			opt(0x0b, elemMicoIndication, FormatTV),
			opt(0x09, elemNetworkSlicingIndication, FormatTV),
			opt(0x27, elemServiceAreaList, FormatTLV),
			optNamed("T3512 value", 0x5e, elemGprsTimer3, FormatTLV),
			optNamed("Non-3GPP de-registration timer value", 0x5d, elemGprsTimer2, FormatTLV),
			optNamed("T3502 value", 0x16, elemGprsTimer2, FormatTLV),
			opt(0x34, elemEmergencyNumberList, FormatTLV),
			optNamed("Extended emergency number list", 0x7a, elemEmergencyNumberList, FormatTLVE),
			opt(0x73, elemSorContainer, FormatTLVE),
			opt(0x78, elemEapMessage, FormatTLVE),
			opt(0x0a, elemNssaiInclusionMode, FormatTV),
			opt(0x76, elemOperatorAccessCategories, FormatTLVE),
			optNamed("Negotiated DRX parameters", 0x51, elemDrxParameters, FormatTLV),
			opt(0x60, elemEpsBearerContextStatus, FormatTLV),
			optNamed("Negotiated extended DRX parameters", 0x6e, elemExtendedDrxParameters, FormatTLV),
			optNamed("T3447 value", 0x6c, elemGprsTimer3, FormatTLV),
			optNamed("T3448 value", 0x6b, elemGprsTimer2, FormatTLV),
			optNamed("T3324 value", 0x6a, elemGprsTimer3, FormatTLV),
			opt(0x67, elemUeRadioCapabilityId, FormatTLV),
			optNamed("Pending NSSAI", 0x39, elemNssai, FormatTLV),
			opt(0x74, elemCipheringKeyData, FormatTLVE),
			opt(0x75, elemCagInformationList, FormatTLVE),
			opt(0x1b, elemTruncated5GSTmsiConfig, FormatTLV),
		},
	},
	MsgRegistrationComplete: {
		msgType: MsgRegistrationComplete, name: "Registration complete",
		slots: []ieSlot{
			opt(0x73, elemSorContainer, FormatTLVE),
		},
	},
	MsgRegistrationReject: {
		msgType: MsgRegistrationReject, name: "Registration reject",
		slots: []ieSlot{
			mand(elemMMCause, FormatV),
			optNamed("T3346 value", 0x5f, elemGprsTimer2, FormatTLV),
			optNamed("T3502 value", 0x16, elemGprsTimer2, FormatTLV),
			opt(0x78, elemEapMessage, FormatTLVE),
			opt(0x69, elemRejectedNssai, FormatTLV),
		},
	},
	MsgDeregistrationRequestUE: {
		msgType: MsgDeregistrationRequestUE, name: "De-registration request (UE originating)",
		slots: []ieSlot{
			mand(elemDeregistrationType, FormatV),
			mand(elemNgKsi, FormatV),
			mand(elemMobileIdentity, FormatLVE),
		},
	},
	MsgDeregistrationAcceptUE: {
		msgType: MsgDeregistrationAcceptUE, name: "De-registration accept (UE originating)",
	},
	MsgDeregistrationRequestNW: {
		msgType: MsgDeregistrationRequestNW, name: "De-registration request (UE terminated)",
		slots: []ieSlot{
			mand(elemDeregistrationType, FormatV),
			mand(elemSpareHalfOctet, FormatV),
			opt(0x58, elemMMCause, FormatTV),
			optNamed("T3346 value", 0x5f, elemGprsTimer2, FormatTLV),
			opt(0x6d, elemRejectedNssai, FormatTLV),
		},
	},
	MsgDeregistrationAcceptNW: {
		msgType: MsgDeregistrationAcceptNW, name: "De-registration accept (UE terminated)",
	},
	MsgServiceRequest: {
		msgType: MsgServiceRequest, name: "Service request",
		slots: []ieSlot{
			mand(elemNgKsi, FormatV),
			mand(elemServiceType, FormatV),
			mandNamed("5G-S-TMSI", elemMobileIdentity, FormatLVE),
			optNamed("Uplink data status", 0x40, elemPsiBitmap, FormatTLV),
			optNamed("PDU session status", 0x50, elemPsiBitmap, FormatTLV),
			optNamed("Allowed PDU session status", 0x25, elemPsiBitmap, FormatTLV),
			opt(0x71, elemNasMessageContainer, FormatTLVE),
		},
	},
	MsgServiceReject: {
		msgType: MsgServiceReject, name: "Service reject",
		slots: []ieSlot{
			mand(elemMMCause, FormatV),
			optNamed("PDU session status", 0x50, elemPsiBitmap, FormatTLV),
			optNamed("T3346 value", 0x5f, elemGprsTimer2, FormatTLV),
			opt(0x78, elemEapMessage, FormatTLVE),
			optNamed("T3448 value", 0x6b, elemGprsTimer2, FormatTLV),
			opt(0x75, elemCagInformationList, FormatTLVE),
		},
	},
	MsgServiceAccept: {
		msgType: MsgServiceAccept, name: "Service accept",
		slots: []ieSlot{
			optNamed("PDU session status", 0x50, elemPsiBitmap, FormatTLV),
			optNamed("PDU session reactivation result", 0x26, elemPsiBitmap, FormatTLV),
			optNamed("PDU session reactivation result error cause", 0x72, elemAdditionalInformation, FormatTLVE),
			opt(0x78, elemEapMessage, FormatTLVE),
			optNamed("T3448 value", 0x6b, elemGprsTimer2, FormatTLV),
		},
	},
	MsgControlPlaneServiceRequest: {
		msgType: MsgControlPlaneServiceRequest, name: "Control plane service request",
		slots: []ieSlot{
			mand(elemControlPlaneServiceType, FormatV),
			mand(elemNgKsi, FormatV),
			opt(0x08, elemPayloadContainerType, FormatTV),
			opt(0x7b, elemPayloadContainer, FormatTLVE),
			optNamed("PDU session ID", 0x12, elemPduSessionIdentity2, FormatTV),
			optNamed("PDU session status", 0x50, elemPsiBitmap, FormatTLV),
			opt(0x0f, elemReleaseAssistanceIndication, FormatTV),
			optNamed("Uplink data status", 0x40, elemPsiBitmap, FormatTLV),
			opt(0x71, elemNasMessageContainer, FormatTLVE),
			optNamed("Allowed PDU session status", 0x25, elemPsiBitmap, FormatTLV),
		},
	},
	MsgSliceAuthenticationCommand: {
		msgType: MsgSliceAuthenticationCommand, name: "Network slice-specific authentication command",
		slots: []ieSlot{
			mand(elemSNssai, FormatLV),
			mand(elemEapMessage, FormatLVE),
		},
	},
	MsgSliceAuthenticationComplete: {
		msgType: MsgSliceAuthenticationComplete, name: "Network slice-specific authentication complete",
		slots: []ieSlot{
			mand(elemSNssai, FormatLV),
			mand(elemEapMessage, FormatLVE),
		},
	},
	MsgSliceAuthenticationResult: {
		msgType: MsgSliceAuthenticationResult, name: "Network slice-specific authentication result",
		slots: []ieSlot{
			mand(elemSNssai, FormatLV),
			mand(elemEapMessage, FormatLVE),
		},
	},
	MsgConfigurationUpdateCommand: {
		msgType: MsgConfigurationUpdateCommand, name: "Configuration update command",
		slots: []ieSlot{
			opt(0x0d, elemConfigurationUpdateIndication, FormatTV),
			optNamed("5G-GUTI", 0x77, elemMobileIdentity, FormatTLVE),
			opt(0x54, elemTaiList, FormatTLV),
			optNamed("Allowed NSSAI", 0x15, elemNssai, FormatTLV),
			opt(0x27, elemServiceAreaList, FormatTLV),
			optNamed("Full name for network", 0x43, elemNetworkName, FormatTLV),
			optNamed("Short name for network", 0x45, elemNetworkName, FormatTLV),
			opt(0x46, elemTimeZone, FormatTV),
			opt(0x47, elemTimeZoneAndTime, FormatTV),
			opt(0x49, elemDaylightSavingTime, FormatTLV),
			opt(0x79, elemLadnInformation, FormatTLVE),
			opt(0x0b, elemMicoIndication, FormatTV),
			opt(0x09, elemNetworkSlicingIndication, FormatTV),
			optNamed("Configured NSSAI", 0x31, elemNssai, FormatTLV),
			opt(0x11, elemRejectedNssai, FormatTLV),
			opt(0x76, elemOperatorAccessCategories, FormatTLVE),
			opt(0x0f, elemSmsIndication, FormatTV),
			optNamed("T3447 value", 0x6c, elemGprsTimer3, FormatTLV),
			opt(0x75, elemCagInformationList, FormatTLVE),
			opt(0x67, elemUeRadioCapabilityId, FormatTLV),
			opt(0x44, elemTruncated5GSTmsiConfig, FormatTLV),
		},
	},
	MsgConfigurationUpdateComplete: {
		msgType: MsgConfigurationUpdateComplete, name: "Configuration update complete",
	},
	MsgAuthenticationRequest: {
		msgType: MsgAuthenticationRequest, name: "Authentication request",
		slots: []ieSlot{
			mand(elemNgKsi, FormatV),
			mand(elemSpareHalfOctet, FormatV),
			mand(elemAbba, FormatLV),
			opt(0x21, elemAuthRand, FormatTV),
			opt(0x20, elemAuthAutn, FormatTLV),
			opt(0x78, elemEapMessage, FormatTLVE),
		},
	},
	MsgAuthenticationResponse: {
		msgType: MsgAuthenticationResponse, name: "Authentication response",
		slots: []ieSlot{
			opt(0x2d, elemAuthResponseParam, FormatTLV),
			opt(0x78, elemEapMessage, FormatTLVE),
		},
	},
	MsgAuthenticationReject: {
		msgType: MsgAuthenticationReject, name: "Authentication reject",
		slots: []ieSlot{
			opt(0x78, elemEapMessage, FormatTLVE),
		},
	},
	MsgAuthenticationFailure: {
		msgType: MsgAuthenticationFailure, name: "Authentication failure",
		slots: []ieSlot{
			mand(elemMMCause, FormatV),
			opt(0x30, elemAuthFailureParam, FormatTLV),
		},
	},
	MsgAuthenticationResult: {
		msgType: MsgAuthenticationResult, name: "Authentication result",
		slots: []ieSlot{
			mand(elemNgKsi, FormatV),
			mand(elemSpareHalfOctet, FormatV),
			mand(elemEapMessage, FormatLVE),
			opt(0x38, elemAbba, FormatTLV),
		},
	},
	MsgIdentityRequest: {
		msgType: MsgIdentityRequest, name: "Identity request",
		slots: []ieSlot{
			mand(elemIdentityType, FormatV),
			mand(elemSpareHalfOctet, FormatV),
		},
	},
	MsgIdentityResponse: {
		msgType: MsgIdentityResponse, name: "Identity response",
		slots: []ieSlot{
			mand(elemMobileIdentity, FormatLVE),
		},
	},
	MsgSecurityModeCommand: {
		msgType: MsgSecurityModeCommand, name: "Security mode command",
		slots: []ieSlot{
			mandNamed("Selected NAS security algorithms", elemSecurityAlgorithms, FormatV),
			mand(elemNgKsi, FormatV),
			mand(elemSpareHalfOctet, FormatV),
			mandNamed("Replayed UE security capabilities", elemUeSecurityCapability, FormatLV),
			opt(0x0e, elemImeisvRequest, FormatTV),
			optNamed("Selected EPS NAS security algorithms", 0x57, elemSecurityAlgorithms, FormatTV),
			optNamed("Additional 5G security information", 0x36, elemAdditionalInformation, FormatTLV),
			opt(0x78, elemEapMessage, FormatTLVE),
			opt(0x38, elemAbba, FormatTLV),
			optNamed("Replayed S1 UE security capabilities", 0x19, elemS1UeNetworkCapability, FormatTLV),
		},
	},
	MsgSecurityModeComplete: {
		msgType: MsgSecurityModeComplete, name: "Security mode complete",
		slots: []ieSlot{
			optNamed("IMEISV", 0x77, elemMobileIdentity, FormatTLVE),
			opt(0x71, elemNasMessageContainer, FormatTLVE),
			optNamed("non-IMEISV PEI", 0x78, elemMobileIdentity, FormatTLVE),
		},
	},
	MsgSecurityModeReject: {
		msgType: MsgSecurityModeReject, name: "Security mode reject",
		slots: []ieSlot{
			mand(elemMMCause, FormatV),
		},
	},
	MsgMMStatus: {
		msgType: MsgMMStatus, name: "5GMM status",
		slots: []ieSlot{
			mand(elemMMCause, FormatV),
		},
	},
	MsgNotification: {
		msgType: MsgNotification, name: "Notification",
		slots: []ieSlot{
			mand(elemAccessType, FormatV),
			mand(elemSpareHalfOctet, FormatV),
		},
	},
	MsgNotificationResponse: {
		msgType: MsgNotificationResponse, name: "Notification response",
		slots: []ieSlot{
			optNamed("PDU session status", 0x50, elemPsiBitmap, FormatTLV),
		},
	},
	MsgULNasTransport: {
		msgType: MsgULNasTransport, name: "UL NAS transport",
		slots: []ieSlot{
			mand(elemPayloadContainerType, FormatV),
			mand(elemSpareHalfOctet, FormatV),
			mand(elemPayloadContainer, FormatLVE),
			optNamed("PDU session ID", 0x12, elemPduSessionIdentity2, FormatTV),
			optNamed("Old PDU session ID", 0x59, elemPduSessionIdentity2, FormatTV),
			opt(0x08, elemRequestType, FormatTV),
			opt(0x22, elemSNssai, FormatTLV),
			opt(0x25, elemDnn, FormatTLV),
			opt(0x24, elemAdditionalInformation, FormatTLV),
			opt(0x0a, elemMaPduSessionInformation, FormatTV),
			opt(0x0f, elemReleaseAssistanceIndication, FormatTV),
		},
	},
	MsgDLNasTransport: {
		msgType: MsgDLNasTransport, name: "DL NAS transport",
		slots: []ieSlot{
			mand(elemPayloadContainerType, FormatV),
			mand(elemSpareHalfOctet, FormatV),
			mand(elemPayloadContainer, FormatLVE),
			optNamed("PDU session ID", 0x12, elemPduSessionIdentity2, FormatTV),
			opt(0x24, elemAdditionalInformation, FormatTLV),
			opt(0x58, elemMMCause, FormatTV),
			optNamed("Back-off timer value", 0x37, elemGprsTimer3, FormatTLV),
		},
	},
}

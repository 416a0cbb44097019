package nas

// 5GSM message types, TS 24.501 table 9.7.2.
const (
	MsgPduSessionEstablishmentRequest      = 0xc1
	MsgPduSessionEstablishmentAccept       = 0xc2
	MsgPduSessionEstablishmentReject       = 0xc3
	MsgPduSessionAuthenticationCommand     = 0xc5
	MsgPduSessionAuthenticationComplete    = 0xc6
	MsgPduSessionAuthenticationResult      = 0xc7
	MsgPduSessionModificationRequest       = 0xc9
	MsgPduSessionModificationReject        = 0xca
	MsgPduSessionModificationCommand       = 0xcb
	MsgPduSessionModificationComplete      = 0xcc
	MsgPduSessionModificationCommandReject = 0xcd
	MsgPduSessionReleaseRequest            = 0xd1
	MsgPduSessionReleaseReject             = 0xd2
	MsgPduSessionReleaseCommand            = 0xd3
	MsgPduSessionReleaseComplete           = 0xd4
	MsgSMStatus                            = 0xd6
)

var smMessages = map[byte]*msgDescriptor{
	MsgPduSessionEstablishmentRequest: {
		msgType: MsgPduSessionEstablishmentRequest, name: "PDU session establishment request",
		slots: []ieSlot{
			mand(elemIntegrityProtectionMaxDataRate, FormatV),
			opt(0x09, elemPduSessionType, FormatTV),
			opt(0x0a, elemSscMode, FormatTV),
			opt(0x28, elemSmCapability, FormatTLV),
			opt(0x55, elemMaxSupportedPacketFilters, FormatTV),
			optNamed("Always-on PDU session requested", 0x0b, elemAlwaysOnIndication, FormatTV),
			opt(0x39, elemSmPduDnRequestContainer, FormatTLV),
			opt(0x7b, elemEpco, FormatTLVE),
			opt(0x66, elemIpHeaderCompressionConfiguration, FormatTLV),
			opt(0x1f, elemEthernetHeaderCompressionConfiguration, FormatTLV),
		},
	},
	MsgPduSessionEstablishmentAccept: {
		msgType: MsgPduSessionEstablishmentAccept, name: "PDU session establishment accept",
		slots: []ieSlot{
			mandNamed("Selected PDU session type", elemPduSessionType, FormatV),
			mandNamed("Selected SSC mode", elemSscMode, FormatV),
			mandNamed("Authorized QoS rules", elemQosRules, FormatLVE),
			mand(elemSessionAmbr, FormatLV),
			opt(0x59, elemSMCause, FormatTV),
			opt(0x29, elemPduAddress, FormatTLV),
			optNamed("RQ timer value", 0x56, elemGprsTimer, FormatTV),
			opt(0x22, elemSNssai, FormatTLV),
			opt(0x08, elemAlwaysOnIndication, FormatTV),
			opt(0x75, elemMappedEpsBearerContexts, FormatTLVE),
			opt(0x78, elemEapMessage, FormatTLVE),
			optNamed("Authorized QoS flow descriptions", 0x79, elemQosFlowDescriptions, FormatTLVE),
			opt(0x7b, elemEpco, FormatTLVE),
			opt(0x25, elemDnn, FormatTLV),
			opt(0x17, elemSmNetworkFeatureSupport, FormatTLV),
			opt(0x18, elemServingPlmnRateControl, FormatTLV),
			opt(0x77, elemAtsssContainer, FormatTLVE),
			opt(0x0c, elemControlPlaneOnlyIndication, FormatTV),
			opt(0x66, elemIpHeaderCompressionConfiguration, FormatTLV),
			opt(0x1f, elemEthernetHeaderCompressionConfiguration, FormatTLV),
		},
	},
	MsgPduSessionEstablishmentReject: {
		msgType: MsgPduSessionEstablishmentReject, name: "PDU session establishment reject",
		slots: []ieSlot{
			mand(elemSMCause, FormatV),
			optNamed("Back-off timer value", 0x37, elemGprsTimer3, FormatTLV),
			opt(0x0f, elemAllowedSscMode, FormatTV),
			opt(0x78, elemEapMessage, FormatTLVE),
			opt(0x61, elemReattemptIndicator, FormatTLV),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionAuthenticationCommand: {
		msgType: MsgPduSessionAuthenticationCommand, name: "PDU session authentication command",
		slots: []ieSlot{
			mand(elemEapMessage, FormatLVE),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionAuthenticationComplete: {
		msgType: MsgPduSessionAuthenticationComplete, name: "PDU session authentication complete",
		slots: []ieSlot{
			mand(elemEapMessage, FormatLVE),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionAuthenticationResult: {
		msgType: MsgPduSessionAuthenticationResult, name: "PDU session authentication result",
		slots: []ieSlot{
			opt(0x78, elemEapMessage, FormatTLVE),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionModificationRequest: {
		msgType: MsgPduSessionModificationRequest, name: "PDU session modification request",
		slots: []ieSlot{
			opt(0x28, elemSmCapability, FormatTLV),
			opt(0x59, elemSMCause, FormatTV),
			opt(0x55, elemMaxSupportedPacketFilters, FormatTV),
			optNamed("Always-on PDU session requested", 0x0b, elemAlwaysOnIndication, FormatTV),
			opt(0x13, elemIntegrityProtectionMaxDataRate, FormatTV),
			optNamed("Requested QoS rules", 0x7a, elemQosRules, FormatTLVE),
			optNamed("Requested QoS flow descriptions", 0x79, elemQosFlowDescriptions, FormatTLVE),
			opt(0x75, elemMappedEpsBearerContexts, FormatTLVE),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionModificationReject: {
		msgType: MsgPduSessionModificationReject, name: "PDU session modification reject",
		slots: []ieSlot{
			mand(elemSMCause, FormatV),
			optNamed("Back-off timer value", 0x37, elemGprsTimer3, FormatTLV),
			opt(0x7b, elemEpco, FormatTLVE),
			opt(0x61, elemReattemptIndicator, FormatTLV),
		},
	},
	MsgPduSessionModificationCommand: {
		msgType: MsgPduSessionModificationCommand, name: "PDU session modification command",
		slots: []ieSlot{
			opt(0x59, elemSMCause, FormatTV),
			opt(0x2a, elemSessionAmbr, FormatTLV),
			optNamed("RQ timer value", 0x56, elemGprsTimer, FormatTV),
			opt(0x08, elemAlwaysOnIndication, FormatTV),
			optNamed("Authorized QoS rules", 0x7a, elemQosRules, FormatTLVE),
			opt(0x75, elemMappedEpsBearerContexts, FormatTLVE),
			optNamed("Authorized QoS flow descriptions", 0x79, elemQosFlowDescriptions, FormatTLVE),
			opt(0x7b, elemEpco, FormatTLVE),
			opt(0x77, elemAtsssContainer, FormatTLVE),
			opt(0x66, elemIpHeaderCompressionConfiguration, FormatTLV),
			opt(0x1e, elemServingPlmnRateControl, FormatTLV),
			opt(0x1f, elemEthernetHeaderCompressionConfiguration, FormatTLV),
		},
	},
	MsgPduSessionModificationComplete: {
		msgType: MsgPduSessionModificationComplete, name: "PDU session modification complete",
		slots: []ieSlot{
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionModificationCommandReject: {
		msgType: MsgPduSessionModificationCommandReject, name: "PDU session modification command reject",
		slots: []ieSlot{
			mand(elemSMCause, FormatV),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionReleaseRequest: {
		msgType: MsgPduSessionReleaseRequest, name: "PDU session release request",
		slots: []ieSlot{
			opt(0x59, elemSMCause, FormatTV),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionReleaseReject: {
		msgType: MsgPduSessionReleaseReject, name: "PDU session release reject",
		slots: []ieSlot{
			mand(elemSMCause, FormatV),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionReleaseCommand: {
		msgType: MsgPduSessionReleaseCommand, name: "PDU session release command",
		slots: []ieSlot{
			mand(elemSMCause, FormatV),
			optNamed("Back-off timer value", 0x37, elemGprsTimer3, FormatTLV),
			opt(0x78, elemEapMessage, FormatTLVE),
			opt(0x61, elemReattemptIndicator, FormatTLV),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgPduSessionReleaseComplete: {
		msgType: MsgPduSessionReleaseComplete, name: "PDU session release complete",
		slots: []ieSlot{
			opt(0x59, elemSMCause, FormatTV),
			opt(0x7b, elemEpco, FormatTLVE),
		},
	},
	MsgSMStatus: {
		msgType: MsgSMStatus, name: "5GSM status",
		slots: []ieSlot{
			mand(elemSMCause, FormatV),
		},
	},

	// "Not used in this version of the protocol"
	0xc4: {msgType: 0xc4, name: "PDU session establishment complete", reserved: true},
	0xc8: {msgType: 0xc8, name: "PDU session authentication reject", reserved: true},
	0xce: {msgType: 0xce, name: "PDU session modification reject (network)", reserved: true},
	0xd0: {msgType: 0xd0, name: "PDU session release reserved", reserved: true},
	0xd5: {msgType: 0xd5, name: "PDU session release reserved", reserved: true},
}

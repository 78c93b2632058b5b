// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package framework holds the reference catalog the analyzer compares
// policies against: the NIST Cybersecurity Framework core structure per the
// CIS MS-ISAC NIST CSF Policy Template Guide (2024).
//
// The catalog is initialized once and never mutated; callers must treat the
// returned slices as read-only.
package framework

// Category groups related requirements within a function.
type Category struct {
	// Name is the category display name (e.g. "Data Security").
	Name string

	// Code is the category's short code (e.g. "PR.DS").
	Code string

	// Requirements lists the category's requirement statements in
	// catalog order.
	Requirements []string
}

// Function is one of the five framework functions. Functions and their
// categories keep a fixed order; gap listings depend on it.
type Function struct {
	// Name is the function identifier (e.g. "PROTECT").
	Name string

	// Description summarizes the function's intent.
	Description string

	// Categories lists the function's categories in catalog order.
	Categories []Category
}

// Function names, in catalog order.
const (
	Identify = "IDENTIFY"
	Protect  = "PROTECT"
	Detect   = "DETECT"
	Respond  = "RESPOND"
	Recover  = "RECOVER"
)

var catalog = []Function{
	{
		Name:        Identify,
		Description: "Develop organizational understanding to manage cybersecurity risk",
		Categories: []Category{
			{
				Name: "Asset Management", Code: "ID.AM",
				Requirements: []string{
					"Physical devices and systems inventory",
					"Software platforms and applications inventory",
					"Organizational communication and data flows mapping",
					"External information systems cataloging",
					"Resources prioritization based on classification and criticality",
				},
			},
			{
				Name: "Business Environment", Code: "ID.BE",
				Requirements: []string{
					"Organization's role in the supply chain identification",
					"Organization's place in critical infrastructure identification",
					"Priorities for organizational mission and objectives",
					"Dependencies and critical functions identification",
					"Resilience requirements establishment",
				},
			},
			{
				Name: "Governance", Code: "ID.GV",
				Requirements: []string{
					"Organizational cybersecurity policy establishment",
					"Cybersecurity roles and responsibilities coordination",
					"Legal and regulatory requirements understanding",
					"Governance and risk management processes alignment",
					"Cybersecurity incorporated into organizational risk management",
				},
			},
			{
				Name: "Risk Assessment", Code: "ID.RA",
				Requirements: []string{
					"Asset vulnerabilities identification and documentation",
					"Cyber threat intelligence collection and analysis",
					"Internal and external threats identification",
					"Potential business impacts and likelihoods determination",
					"Threats, vulnerabilities, likelihoods, and impacts for risk determination",
				},
			},
			{
				Name: "Risk Management Strategy", Code: "ID.RM",
				Requirements: []string{
					"Risk management processes establishment and management",
					"Organizational risk tolerance determination and communication",
					"Organization's risk determination and review",
				},
			},
			{
				Name: "Supply Chain Risk Management", Code: "ID.SC",
				Requirements: []string{
					"Cyber supply chain risk management processes identification",
					"Suppliers and third-party partners identified and prioritized",
					"Contracts with suppliers and partners for cybersecurity requirements",
					"Suppliers and third-party partners routinely assessed",
					"Response and recovery planning with suppliers and partners",
				},
			},
		},
	},
	{
		Name:        Protect,
		Description: "Develop and implement appropriate safeguards",
		Categories: []Category{
			{
				Name: "Identity Management and Access Control", Code: "PR.AC",
				Requirements: []string{
					"Identities and credentials issued, managed, verified, revoked, and audited",
					"Physical access to assets managed",
					"Remote access managed",
					"Access permissions and authorizations managed",
					"Network integrity protected through segregation",
					"Identities proofed and bound to credentials and asserted in interactions",
				},
			},
			{
				Name: "Awareness and Training", Code: "PR.AT",
				Requirements: []string{
					"All users informed and trained on cybersecurity",
					"Privileged users understand roles and responsibilities",
					"Third-party stakeholders understand roles and responsibilities",
					"Senior executives understand roles and responsibilities",
					"Physical and cybersecurity personnel understand roles",
				},
			},
			{
				Name: "Data Security", Code: "PR.DS",
				Requirements: []string{
					"Data-at-rest protected",
					"Data-in-transit protected",
					"Assets formally managed through development lifecycle",
					"Adequate capacity maintained for availability",
					"Protections against data leaks implemented",
					"Integrity checking mechanisms for verification",
					"Development and testing environment separation",
				},
			},
			{
				Name: "Information Protection Processes", Code: "PR.IP",
				Requirements: []string{
					"Baseline configuration created and maintained",
					"System development life cycle for managing systems",
					"Configuration change control processes",
					"Backups of information conducted and maintained",
					"Physical operating environment for assets managed",
					"Data destruction conducted according to policy",
					"Protection processes improved based on lessons learned",
					"Effectiveness of protection technologies shared",
					"Response plans and recovery plans in place and managed",
					"Response and recovery plans tested",
					"Cybersecurity included in HR practices",
					"Vulnerability management plan developed and implemented",
				},
			},
			{
				Name: "Maintenance", Code: "PR.MA",
				Requirements: []string{
					"Maintenance and repair of assets performed and logged",
					"Remote maintenance approved, logged, and performed securely",
				},
			},
			{
				Name: "Protective Technology", Code: "PR.PT",
				Requirements: []string{
					"Audit/log records determined, documented, implemented, and reviewed",
					"Removable media protected and usage restricted",
					"Least functionality principle incorporated",
					"Communications and control networks protected",
					"Mechanisms to achieve resilience requirements implemented",
				},
			},
		},
	},
	{
		Name:        Detect,
		Description: "Develop and implement activities to identify cybersecurity events",
		Categories: []Category{
			{
				Name: "Anomalies and Events", Code: "DE.AE",
				Requirements: []string{
					"Baseline of network operations and flows established",
					"Detected events analyzed to understand attack targets and methods",
					"Event data aggregated and correlated from multiple sources",
					"Impact of events determined",
					"Incident alert thresholds established",
				},
			},
			{
				Name: "Security Continuous Monitoring", Code: "DE.CM",
				Requirements: []string{
					"Network monitored to detect potential cybersecurity events",
					"Physical environment monitored for cybersecurity events",
					"Personnel activity monitored for cybersecurity events",
					"Malicious code detected",
					"Unauthorized mobile code detected",
					"External service provider activity monitored",
					"Monitoring for unauthorized personnel, connections, and devices",
					"Vulnerability scans performed",
				},
			},
			{
				Name: "Detection Processes", Code: "DE.DP",
				Requirements: []string{
					"Roles and responsibilities for detection defined",
					"Detection activities comply with requirements",
					"Detection processes tested",
					"Event detection information communicated",
					"Detection processes continuously improved",
				},
			},
		},
	},
	{
		Name:        Respond,
		Description: "Develop and implement appropriate activities for detected cybersecurity incidents",
		Categories: []Category{
			{
				Name: "Response Planning", Code: "RS.RP",
				Requirements: []string{
					"Response plan executed during or after incident",
				},
			},
			{
				Name: "Communications", Code: "RS.CO",
				Requirements: []string{
					"Personnel know their roles and order of operations",
					"Incidents reported consistent with established criteria",
					"Information shared with designated external stakeholders",
					"Coordination with stakeholders occurs",
					"Voluntary information sharing occurs with external stakeholders",
				},
			},
			{
				Name: "Analysis", Code: "RS.AN",
				Requirements: []string{
					"Notifications from detection systems investigated",
					"Impact of incident understood",
					"Forensics performed",
					"Incidents categorized consistent with response plans",
					"Processes established to receive and analyze vulnerability disclosures",
				},
			},
			{
				Name: "Mitigation", Code: "RS.MI",
				Requirements: []string{
					"Incidents contained",
					"Incidents mitigated",
					"Newly identified vulnerabilities mitigated or documented",
				},
			},
			{
				Name: "Improvements", Code: "RS.IM",
				Requirements: []string{
					"Response plans incorporate lessons learned",
					"Response strategies updated",
				},
			},
		},
	},
	{
		Name:        Recover,
		Description: "Develop and implement activities to maintain resilience and restore capabilities",
		Categories: []Category{
			{
				Name: "Recovery Planning", Code: "RC.RP",
				Requirements: []string{
					"Recovery plan executed during or after cybersecurity incident",
				},
			},
			{
				Name: "Improvements", Code: "RC.IM",
				Requirements: []string{
					"Recovery plans incorporate lessons learned",
					"Recovery strategies updated",
				},
			},
			{
				Name: "Communications", Code: "RC.CO",
				Requirements: []string{
					"Public relations managed",
					"Reputation repaired after incident",
					"Recovery activities communicated to stakeholders",
				},
			},
		},
	},
}

// Catalog returns all five framework functions in catalog order.
func Catalog() []Function {
	return catalog
}

// Names returns the function names of funcs, preserving order.
func Names(funcs []Function) []string {
	names := make([]string, len(funcs))
	for i, f := range funcs {
		names[i] = f.Name
	}
	return names
}

// Lookup returns the function with the given name, if present.
func Lookup(name string) (Function, bool) {
	for _, f := range catalog {
		if f.Name == name {
			return f, true
		}
	}
	return Function{}, false
}

// RequirementCount returns the total number of requirements in funcs.
func RequirementCount(funcs []Function) int {
	n := 0
	for _, f := range funcs {
		for _, c := range f.Categories {
			n += len(c.Requirements)
		}
	}
	return n
}
